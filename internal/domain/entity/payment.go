package entity

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

type Payment struct {
	ID           string        `json:"id" firestore:"id"`
	JobID        string        `json:"jobId" firestore:"jobId"`
	ClientID     string        `json:"clientId" firestore:"clientId"`
	FreelancerID string        `json:"freelancerId" firestore:"freelancerId"`
	Amount       float64       `json:"amount" firestore:"amount"`
	Status       PaymentStatus `json:"status" firestore:"status"`
	Reference    string        `json:"reference,omitempty" firestore:"reference,omitempty"`
	CreatedAt    time.Time     `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt" firestore:"updatedAt"`
}

// PaymentRecord is a payment with its job title and both parties populated.
type PaymentRecord struct {
	*Payment
	JobTitle   string       `json:"jobTitle"`
	Client     *UserSummary `json:"client"`
	Freelancer *UserSummary `json:"freelancer"`
}

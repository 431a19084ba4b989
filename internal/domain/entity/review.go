package entity

import "time"

type Review struct {
	ID           string    `json:"id" firestore:"id"`
	JobID        string    `json:"jobId" firestore:"jobId"`
	ClientID     string    `json:"clientId" firestore:"clientId"`
	FreelancerID string    `json:"freelancerId" firestore:"freelancerId"`
	Rating       int       `json:"rating" firestore:"rating"`
	Feedback     string    `json:"feedback" firestore:"feedback"`
	Response     string    `json:"response,omitempty" firestore:"response,omitempty"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// ReviewID is the storage key of the single review per job and client.
func ReviewID(jobID, clientID string) string {
	return jobID + "_" + clientID
}

func (r *Review) IsParty(userID string) bool {
	return r.ClientID == userID || r.FreelancerID == userID
}

// ReviewRecord is a review with its job title and both parties populated.
type ReviewRecord struct {
	*Review
	JobTitle   string       `json:"jobTitle"`
	Client     *UserSummary `json:"client"`
	Freelancer *UserSummary `json:"freelancer"`
}

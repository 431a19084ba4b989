package entity

import "time"

type WorkSubmission struct {
	ID           string    `json:"id" firestore:"id"`
	JobID        string    `json:"jobId" firestore:"jobId"`
	FreelancerID string    `json:"freelancerId" firestore:"freelancerId"`
	Links        []string  `json:"links" firestore:"links"`
	Notes        string    `json:"notes" firestore:"notes"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}

package entity

import "time"

type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalAccepted ProposalStatus = "accepted"
	ProposalRejected ProposalStatus = "rejected"
)

type Proposal struct {
	ID             string         `json:"id" firestore:"id"`
	JobID          string         `json:"jobId" firestore:"jobId"`
	FreelancerID   string         `json:"freelancerId" firestore:"freelancerId"`
	CoverLetter    string         `json:"coverLetter" firestore:"coverLetter"`
	ExpectedBudget float64        `json:"expectedBudget" firestore:"expectedBudget"`
	Status         ProposalStatus `json:"status" firestore:"status"`
	CreatedAt      time.Time      `json:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt" firestore:"updatedAt"`
}

// ProposalID is the storage key of the single proposal a freelancer may
// hold on a job.
func ProposalID(jobID, freelancerID string) string {
	return jobID + "_" + freelancerID
}

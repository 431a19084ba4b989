package entity

import (
	"strings"
	"time"
)

type JobStatus string

const (
	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusCompleted  JobStatus = "completed"
)

// ApprovalPending is the approval state of every newly posted job.
const ApprovalPending = "pending"

type Job struct {
	ID             string    `json:"id" firestore:"id"`
	Title          string    `json:"title" firestore:"title"`
	Description    string    `json:"description" firestore:"description"`
	SkillsRequired []string  `json:"skillsRequired" firestore:"skillsRequired"`
	Budget         float64   `json:"budget" firestore:"budget"`
	Duration       string    `json:"duration" firestore:"duration"`
	ClientID       string    `json:"clientId" firestore:"clientId"`
	FreelancerID   string    `json:"freelancerId,omitempty" firestore:"freelancerId,omitempty"`
	Status         JobStatus `json:"status" firestore:"status"`
	ApprovalStatus string    `json:"approvalStatus" firestore:"approvalStatus"`
	CreatedAt      time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// JobFilter combines its constraints with AND. Zero-valued fields are ignored.
type JobFilter struct {
	Status    JobStatus
	Skills    []string // any-of
	MaxBudget *float64
	Duration  string
	Keyword   string // case-insensitive substring of title or description
}

func (f JobFilter) Matches(job *Job) bool {
	if f.Status != "" && job.Status != f.Status {
		return false
	}
	if len(f.Skills) > 0 && !containsAny(job.SkillsRequired, f.Skills) {
		return false
	}
	if f.MaxBudget != nil && job.Budget > *f.MaxBudget {
		return false
	}
	if f.Duration != "" && job.Duration != f.Duration {
		return false
	}
	if f.Keyword != "" {
		kw := strings.ToLower(f.Keyword)
		if !strings.Contains(strings.ToLower(job.Title), kw) &&
			!strings.Contains(strings.ToLower(job.Description), kw) {
			return false
		}
	}
	return true
}

func containsAny(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// ActiveProject is an in-progress job with its client populated.
type ActiveProject struct {
	*Job
	Client *UserSummary `json:"client"`
}

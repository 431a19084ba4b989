package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobFilter_Matches(t *testing.T) {
	job := &Job{
		Title:          "Build a React dashboard",
		Description:    "Charts and tables backed by a Go API",
		SkillsRequired: []string{"react", "go"},
		Budget:         500,
		Duration:       "1 month",
		Status:         JobStatusOpen,
	}
	budget := func(v float64) *float64 { return &v }

	tests := []struct {
		name   string
		filter JobFilter
		want   bool
	}{
		{"empty filter", JobFilter{}, true},
		{"status match", JobFilter{Status: JobStatusOpen}, true},
		{"status mismatch", JobFilter{Status: JobStatusCompleted}, false},
		{"any skill", JobFilter{Skills: []string{"python", "go"}}, true},
		{"no skill", JobFilter{Skills: []string{"python"}}, false},
		{"budget equal", JobFilter{MaxBudget: budget(500)}, true},
		{"budget below", JobFilter{MaxBudget: budget(499)}, false},
		{"duration exact", JobFilter{Duration: "1 month"}, true},
		{"duration differs", JobFilter{Duration: "1 Month"}, false},
		{"keyword in title", JobFilter{Keyword: "REACT"}, true},
		{"keyword in description", JobFilter{Keyword: "go api"}, true},
		{"keyword missing", JobFilter{Keyword: "mobile"}, false},
		{"all combined", JobFilter{Status: JobStatusOpen, Skills: []string{"go"}, MaxBudget: budget(600), Keyword: "dashboard"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(job))
		})
	}
}

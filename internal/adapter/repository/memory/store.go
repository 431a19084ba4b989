// Package memory is an in-process implementation of the domain repositories.
// It backs the test suites and DATASTORE=memory.
package memory

import (
	"context"
	"sync"

	"gighub/internal/domain/entity"
)

type txKey struct{}

// Store holds every collection behind one mutex. Calls made inside
// WithinTransaction reuse the held lock.
type Store struct {
	mu sync.Mutex

	users       map[string]*entity.User
	emails      map[string]string
	jobs        map[string]*entity.Job
	proposals   map[string]*entity.Proposal
	submissions map[string]*entity.WorkSubmission
	payments    map[string]*entity.Payment
	earnings    map[string]*entity.Earnings
	reviews     map[string]*entity.Review
}

func NewStore() *Store {
	return &Store{
		users:       map[string]*entity.User{},
		emails:      map[string]string{},
		jobs:        map[string]*entity.Job{},
		proposals:   map[string]*entity.Proposal{},
		submissions: map[string]*entity.WorkSubmission{},
		payments:    map[string]*entity.Payment{},
		earnings:    map[string]*entity.Earnings{},
		reviews:     map[string]*entity.Review{},
	}
}

// lock acquires the store unless ctx already belongs to a transaction.
func (s *Store) lock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// WithinTransaction runs fn with the store locked and restores the previous
// contents if fn fails.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	users       map[string]*entity.User
	emails      map[string]string
	jobs        map[string]*entity.Job
	proposals   map[string]*entity.Proposal
	submissions map[string]*entity.WorkSubmission
	payments    map[string]*entity.Payment
	earnings    map[string]*entity.Earnings
	reviews     map[string]*entity.Review
}

// Stored values are never mutated in place, so copying the maps is enough.
func (s *Store) snapshot() snapshot {
	return snapshot{
		users:       copyMap(s.users),
		emails:      copyMap(s.emails),
		jobs:        copyMap(s.jobs),
		proposals:   copyMap(s.proposals),
		submissions: copyMap(s.submissions),
		payments:    copyMap(s.payments),
		earnings:    copyMap(s.earnings),
		reviews:     copyMap(s.reviews),
	}
}

func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.emails = snap.emails
	s.jobs = snap.jobs
	s.proposals = snap.proposals
	s.submissions = snap.submissions
	s.payments = snap.payments
	s.earnings = snap.earnings
	s.reviews = snap.reviews
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.Profile.Skills = cloneStrings(u.Profile.Skills)
	c.Profile.Portfolio = cloneStrings(u.Profile.Portfolio)
	return &c
}

func cloneJob(j *entity.Job) *entity.Job {
	c := *j
	c.SkillsRequired = cloneStrings(j.SkillsRequired)
	return &c
}

func cloneProposal(p *entity.Proposal) *entity.Proposal {
	c := *p
	return &c
}

func cloneSubmission(w *entity.WorkSubmission) *entity.WorkSubmission {
	c := *w
	c.Links = cloneStrings(w.Links)
	return &c
}

func clonePayment(p *entity.Payment) *entity.Payment {
	c := *p
	return &c
}

func cloneEarnings(e *entity.Earnings) *entity.Earnings {
	c := *e
	if e.Transactions != nil {
		c.Transactions = make([]entity.EarningsTransaction, len(e.Transactions))
		copy(c.Transactions, e.Transactions)
	}
	return &c
}

func cloneReview(r *entity.Review) *entity.Review {
	c := *r
	return &c
}

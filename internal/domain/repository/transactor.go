package repository

import "context"

// Transactor runs fn atomically. Repository calls made with the ctx passed to
// fn join the transaction; an error from fn discards every write.
//
// Implementations may retry fn on contention, so fn must not have side
// effects outside the repositories. Within fn, all reads must happen before
// the first write.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

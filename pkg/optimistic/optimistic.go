// Package optimistic applies a local change before the remote call completes
// and reverts it when the call fails.
package optimistic

import (
	"context"
	"fmt"
)

// Store holds the locally visible copy of a value.
type Store[T any] interface {
	Load(ctx context.Context) (T, error)
	Store(ctx context.Context, v T) error
}

type Update[T any] struct {
	// Apply returns the speculative value. It must not mutate its argument.
	Apply func(T) T
	// Remote performs the authoritative change.
	Remote func(ctx context.Context) error
	// Reconcile refetches the authoritative value after a successful Remote.
	Reconcile func(ctx context.Context) (T, error)
	// Go runs the reconcile step; defaults to a new goroutine.
	Go func(func())
	// OnError receives reconcile and revert failures.
	OnError func(error)
}

// Run snapshots the store, applies the speculative value, calls Remote and
// either keeps the value (scheduling Reconcile) or restores the snapshot.
func Run[T any](ctx context.Context, s Store[T], u Update[T]) (T, error) {
	snapshot, err := s.Load(ctx)
	if err != nil {
		var zero T

		return zero, fmt.Errorf("optimistic - snapshot: %w", err)
	}

	speculative := u.Apply(snapshot)
	if err := s.Store(ctx, speculative); err != nil {
		return snapshot, fmt.Errorf("optimistic - apply: %w", err)
	}

	if err := u.Remote(ctx); err != nil {
		if rerr := s.Store(context.WithoutCancel(ctx), snapshot); rerr != nil {
			u.report(fmt.Errorf("optimistic - revert: %w", rerr))
		}

		return snapshot, err
	}

	if u.Reconcile != nil {
		run := u.Go
		if run == nil {
			run = func(f func()) { go f() }
		}

		bg := context.WithoutCancel(ctx)

		run(func() {
			fresh, err := u.Reconcile(bg)
			if err != nil {
				u.report(fmt.Errorf("optimistic - reconcile: %w", err))

				return
			}

			if err := s.Store(bg, fresh); err != nil {
				u.report(fmt.Errorf("optimistic - reconcile store: %w", err))
			}
		})
	}

	return speculative, nil
}

func (u Update[T]) report(err error) {
	if u.OnError != nil {
		u.OnError(err)
	}
}

// Package source resolves the contact collection for one load cycle:
// the built-in seed list merged with whatever the remote source returns.
package source

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/smileynet/contacts/internal/contact"
)

// ErrUnavailable is the single failure class of the remote source. It covers
// transport errors, non-success responses, and malformed payloads.
var ErrUnavailable = errors.New("source: remote contacts unavailable")

// Fetcher retrieves the remote contact collection.
type Fetcher interface {
	Fetch(ctx context.Context) ([]contact.Contact, error)
}

// Result is the settled outcome of a load cycle.
// Fallback is true when the remote attempt failed and Contacts is the seed list.
type Result struct {
	Contacts []contact.Contact
	Fallback bool
}

// Resolver runs one fetch per Resolve call and merges it with the seed list.
type Resolver struct {
	fetcher Fetcher
	seed    func() []contact.Contact
	logger  *zap.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger used to record load cycle outcomes.
func WithLogger(l *zap.Logger) ResolverOption {
	return func(r *Resolver) { r.logger = l }
}

// WithSeed replaces the built-in seed list.
func WithSeed(seed func() []contact.Contact) ResolverOption {
	return func(r *Resolver) { r.seed = seed }
}

// NewResolver creates a Resolver backed by f.
func NewResolver(f Fetcher, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		fetcher: f,
		seed:    contact.Seed,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve performs exactly one fetch attempt and always settles. On success
// it returns the seed list merged with the remote records (remote wins on a
// shared ID). On any failure it returns the seed list unchanged with
// Fallback set; the error itself is not propagated. No retries.
func (r *Resolver) Resolve(ctx context.Context) Result {
	seed := r.seed()

	remote, err := r.fetcher.Fetch(ctx)
	if err != nil {
		r.logger.Debug("contacts loaded from seed list",
			zap.Int("count", len(seed)),
			zap.NamedError("cause", err))
		return Result{Contacts: seed, Fallback: true}
	}

	merged := contact.Merge(seed, remote)
	r.logger.Debug("contacts loaded from remote source",
		zap.Int("remote", len(remote)),
		zap.Int("count", len(merged)))
	return Result{Contacts: merged}
}

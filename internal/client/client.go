package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes one command and returns when it is done.
	Run(ctx context.Context) error
}

var _ Client = (*CLI)(nil)

// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport endpoint, e.g. an HTTP server.
// Implementations block in Serve until the context is cancelled or the
// server fails.
type Delivery interface {
	Serve(ctx context.Context) error
}

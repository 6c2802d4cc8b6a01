// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running server owned by the application lifecycle.
// Serve blocks until the server stops; shutdown happens via Fx hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}

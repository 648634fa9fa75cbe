// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a transport served for the lifetime of the process.
type Delivery interface {
	// Serve blocks until the transport stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}

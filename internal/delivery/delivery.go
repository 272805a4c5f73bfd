// Package delivery defines the contract served deliveries implement.
package delivery

import "context"

// Delivery is a long-running inbound adapter, e.g. an HTTP server.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}

// Package delivery defines the contract every inbound surface implements.
package delivery

import "context"

// Delivery is a long-running inbound surface, e.g. an HTTP server or a
// background worker. Serve blocks until the surface stops.
type Delivery interface {
	Serve(ctx context.Context) error
}

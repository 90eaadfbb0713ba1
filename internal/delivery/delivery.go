// Package delivery defines the contract every transport shares.
package delivery

import "context"

// Delivery is a serving surface started by the composition root.
type Delivery interface {
	Serve(ctx context.Context) error
}

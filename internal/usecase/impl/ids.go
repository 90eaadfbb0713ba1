// Package impl contains the application-specific business rules implementations.
package impl

import (
	"fmt"
	"time"
)

// newID builds an entity id the way the seeded dataset does:
// "<prefix>-<unix milliseconds>".
func newID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
}

// avatarURL builds a deterministic placeholder avatar for generated users.
func avatarURL(seed string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/100/100", seed)
}

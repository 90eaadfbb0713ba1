// Package lifecycle holds shared timeouts for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hook work such as pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second

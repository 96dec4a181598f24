// Package lifecycle holds shared constants for application start/stop flows.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps (server
// shutdown, database ping).
const DefaultTimeout = 30 * time.Second

// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as server shutdown and
// database pings during startup.
const DefaultTimeout = 15 * time.Second

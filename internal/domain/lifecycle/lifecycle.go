// Package lifecycle holds shared timing constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds fx OnStart/OnStop hooks such as pings and graceful shutdowns.
const DefaultTimeout = 10 * time.Second

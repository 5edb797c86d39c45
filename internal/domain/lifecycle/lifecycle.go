// Package lifecycle holds shared settings for starting and stopping components.
package lifecycle

import "time"

// DefaultTimeout bounds start hooks and graceful shutdown of long-lived components.
const DefaultTimeout = 10 * time.Second

// Package lifecycle holds shared constants for application start and stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds how long a lifecycle hook may take to start or
// shut down a component before it is abandoned.
const DefaultTimeout = 10 * time.Second

// README: Rate-limit decisions returned to the HTTP middleware.
package ratelimit

import "time"

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

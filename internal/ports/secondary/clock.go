package secondary

import "time"

// Clock abstracts the current time so services can be tested against a
// fixed "today". Everything date-related truncates Now() to its UTC
// calendar day.
type Clock interface {
	Now() time.Time
}

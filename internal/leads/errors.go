package leads

import "errors"

// ErrLeadNotFound is returned when a lead id does not exist.
var ErrLeadNotFound = errors.New("lead not found")

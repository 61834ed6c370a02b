package engine

import "errors"

// errGeneratorUnavailable stands in for a generation failure when no
// generator was configured; AI reminders then record skipped_error and
// still advance.
var errGeneratorUnavailable = errors.New("ai generator not configured")

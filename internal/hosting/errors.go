package hosting

import "fmt"

// Error is a call the hosting provider answered with a failure.
type Error struct {
	Op      string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("hosting: %s failed: %s", e.Op, e.Message)
}

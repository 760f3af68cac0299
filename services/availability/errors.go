package availability

import "fmt"

// InvalidWindowError rejects a malformed window before anything is persisted.
type InvalidWindowError struct {
	Message string
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("invalid availability window: %s", e.Message)
}

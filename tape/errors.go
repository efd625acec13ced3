package tape

import "fmt"

// TapeError reports where a tape failed generation or verification.
// StepIndex is the 0-based index into Steps, or -1 for failures before the
// first step.
type TapeError struct {
	StepIndex int    `json:"step_index"`
	Reason    string `json:"reason"`
	Message   string `json:"message"`
}

func (e *TapeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("tape error(step=%d reason=%s): %s", e.StepIndex, e.Reason, e.Message)
}

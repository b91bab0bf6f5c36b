package task

import (
	"fmt"
	"strings"
)

// Status represents the completion state of a Task. The zero value is not a
// valid status; use ParseStatus to decode stored text.
type Status int

const (
	StatusIncomplete Status = iota + 1
	StatusComplete
)

const (
	textIncomplete = "incomplete"
	textComplete   = "complete"
)

// ParseStatus decodes the stored textual form of a status. Input is trimmed
// and matched case-insensitively; anything other than "incomplete" or
// "complete" is rejected rather than defaulted.
func ParseStatus(s string) (Status, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case textIncomplete:
		return StatusIncomplete, nil
	case textComplete:
		return StatusComplete, nil
	default:
		return 0, fmt.Errorf("invalid status string: %s", v)
	}
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusIncomplete, StatusComplete:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer and yields the stored lowercase encoding.
func (s Status) String() string {
	switch s {
	case StatusIncomplete:
		return textIncomplete
	case StatusComplete:
		return textComplete
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

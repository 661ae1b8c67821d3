package board

import "errors"

// Validation rejections. A rejected call takes no snapshot and changes nothing.
var (
	ErrBlankName            = errors.New("name must not be blank")
	ErrDuplicateLabel       = errors.New("a label with this name already exists")
	ErrTooFewMembers        = errors.New("a rule needs at least two people")
	ErrPersonNotFound       = errors.New("person not found")
	ErrLabelNotFound        = errors.New("label not found")
	ErrRuleNotFound         = errors.New("rule not found")
	ErrInvalidGroup         = errors.New("group is out of range")
	ErrUnknownCapacityClass = errors.New("unknown capacity class")

	// ErrCancelled is returned when the user declines a confirmation.
	ErrCancelled = errors.New("cancelled by user")
)

// reason maps an error to a short label for logs and metrics.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrBlankName):
		return "blank_name"
	case errors.Is(err, ErrDuplicateLabel):
		return "duplicate_label"
	case errors.Is(err, ErrTooFewMembers):
		return "too_few_members"
	case errors.Is(err, ErrPersonNotFound), errors.Is(err, ErrLabelNotFound), errors.Is(err, ErrRuleNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidGroup):
		return "invalid_group"
	case errors.Is(err, ErrUnknownCapacityClass):
		return "unknown_capacity_class"
	case errors.Is(err, ErrCancelled):
		return "cancelled"
	default:
		return "other"
	}
}

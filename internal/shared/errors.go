package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrNoData indicates a worksheet was missing, empty, or unreadable.
	ErrNoData = errors.New("no data")
)

// UserSafeMessage maps an internal error to text safe to show the operator.
// Anything unrecognised collapses to a generic failure message; detail stays
// in the logs.
func UserSafeMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "Resource not found"
	case errors.Is(err, ErrNoData):
		return "No data available"
	default:
		return "Something went wrong, please retry"
	}
}

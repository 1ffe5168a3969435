package templatedef

import (
	"errors"
	"fmt"
)

// ErrInvalidParameterValue is returned when the template, cluster and labels
// combine into an invalid parameter set.
var ErrInvalidParameterValue = errors.New("invalid parameter value")

func invalidParameter(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameterValue, fmt.Sprintf(format, args...))
}

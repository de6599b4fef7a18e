package core

import (
	"errors"
	"fmt"

	"github.com/0xRadioAc7iv/daysince/internal/record"
)

// ErrClock is returned when the system clock reports a time before the Unix
// epoch, or a time earlier than a stored timestamp.
var ErrClock = errors.New("error while retrieving time")

// LoadError ties a failure to read or decode the data file to its path.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	var malformed *record.MalformedRecordError
	if errors.As(e.Err, &malformed) {
		return fmt.Sprintf("error in %s at line %d: %s", e.Path, malformed.Line, malformed.Reason)
	}
	return fmt.Sprintf("unable to read %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

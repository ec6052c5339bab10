package tzoffset

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/tzlist/tzoffset/historical"
)

var (
	// ErrInvalidTimezoneName is matched by every error Parse returns.
	ErrInvalidTimezoneName = errors.New("invalid timezone name")

	// ErrInvalidInstant reports an epoch value that is not a finite instant
	// within the range of an ECMAScript Date.
	ErrInvalidInstant = errors.New("invalid instant")

	// ErrCorruptEmbeddedData reports historical data that failed to decode.
	ErrCorruptEmbeddedData = historical.ErrCorruptEmbeddedData
)

// InvalidNameError is returned by Parse for names missing from the catalog.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return "invalid timezone name " + strconv.Quote(e.Name)
}

func (e *InvalidNameError) Is(target error) bool {
	return target == ErrInvalidTimezoneName
}

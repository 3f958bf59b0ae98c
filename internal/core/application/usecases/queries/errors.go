package queries

import (
	"fooddelivery/internal/pkg/errs"
)

// ErrCoordinatesComeInPairs rejects a latitude without a longitude or the
// other way round.
var ErrCoordinatesComeInPairs = errs.NewValueIsRequiredError("both latitude and longitude")

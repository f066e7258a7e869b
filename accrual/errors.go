package accrual

import "errors"

// ErrUnsupportedCadence is the sentinel behind UnsupportedCadenceError.
// Use with errors.Is(); computation for a configuration carrying an
// unknown cadence is refused until corrected.
var ErrUnsupportedCadence = errors.New("unsupported accrual cadence")

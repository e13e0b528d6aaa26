package aquifer

import "errors"

// ErrInvalidInput is the root of every parameter-validation failure.
// Callers can match any rejected input with errors.Is(err, ErrInvalidInput).
var ErrInvalidInput = errors.New("invalid aquifer input")

var (
	ErrLengthMismatch   = errors.New("K, S and R need matching lengths")
	ErrNegativeWell     = errors.New("well radius needs to be >= 0")
	ErrUnsortedRadii    = errors.New("boundary radii need to be strictly increasing")
	ErrRadiusOutOfRange = errors.New("queried radius outside the partition range")
	ErrNonPositiveK     = errors.New("conductivity needs to be positive")
	ErrNonPositiveS     = errors.New("storativity needs to be positive")
	ErrBadDimension     = errors.New("flow dimension needs to be in (0, 3]")
	ErrBadLatExt        = errors.New("lateral extent needs to be positive")
	ErrBadWellK         = errors.New("well conductivity needs to be positive")
)

package airfoil

import "errors"

var (
	// ErrEmptySeries indicates an operation received a series without rows.
	ErrEmptySeries = errors.New("airfoil: coordinate series is empty")
	// ErrInvalidScale indicates a scale factor or target chord that is not strictly positive.
	ErrInvalidScale = errors.New("airfoil: scale must be a finite number > 0")
	// ErrDegenerateChord indicates the reference chord (x of the first row) is not positive.
	ErrDegenerateChord = errors.New("airfoil: reference chord must be > 0")
	// ErrUnknownScaleMode indicates an unparsable scale mode name.
	ErrUnknownScaleMode = errors.New("airfoil: unknown scale mode")
)

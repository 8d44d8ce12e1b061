package board

import "github.com/pkg/errors"

// ErrOutOfBounds is returned by checked APIs when a coordinate falls
// outside [0,9]x[0,39]. Fast, unchecked APIs no-op instead of returning
// this error (see Playfield.Set vs Playfield.SetChecked).
var ErrOutOfBounds = errors.New("board: coordinate out of bounds")

// ErrMalformedBoard is returned by Deserialize when the wire form has the
// wrong row count or sets bits outside a row's ten valid columns.
var ErrMalformedBoard = errors.New("board: malformed serialized board")

func outOfBounds(x, y int) error {
	return errors.Wrapf(ErrOutOfBounds, "x=%d y=%d", x, y)
}

func errMalformedLength(n int) error {
	return errors.Wrapf(ErrMalformedBoard, "expected %d rows, got %d", Rows, n)
}

func errMalformedRow(y int, row uint16) error {
	return errors.Wrapf(ErrMalformedBoard, "row %d has bits set outside columns 0..9: %#x", y, row)
}

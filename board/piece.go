// Package board implements the stacker-block playfield: bitboard cell
// storage with an incremental hash, piece geometry, SRS+ kick tables and
// the per-piece collision map used by the placement engine.
package board

import "fmt"

// Piece identifies one of the seven tetromino shapes.
type Piece uint8

const (
	I Piece = iota
	O
	T
	S
	Z
	J
	L

	PieceArraySize = int(iota)
)

var pieceNames = [PieceArraySize]string{"I", "O", "T", "S", "Z", "J", "L"}

func (p Piece) String() string {
	if int(p) >= PieceArraySize {
		return fmt.Sprintf("Piece(%d)", p)
	}
	return pieceNames[p]
}

// PieceFromByte parses the u8 encoding used at language boundaries
// (I=0, O=1, T=2, S=3, Z=4, J=5, L=6).
func PieceFromByte(b uint8) (Piece, error) {
	if int(b) >= PieceArraySize {
		return 0, fmt.Errorf("invalid piece byte %d", b)
	}
	return Piece(b), nil
}

// Byte encodes the piece using the language-boundary u8 encoding.
func (p Piece) Byte() uint8 { return uint8(p) }

// Rotation is one of the four SRS orientations.
type Rotation uint8

const (
	North Rotation = iota
	East
	South
	West

	RotationArraySize = int(iota)
)

var rotationNames = [RotationArraySize]string{"N", "E", "S", "W"}

func (r Rotation) String() string {
	if int(r) >= RotationArraySize {
		return fmt.Sprintf("Rotation(%d)", r)
	}
	return rotationNames[r]
}

// RotationFromByte parses the u8 encoding used at language boundaries
// (N=0, E=1, S=2, W=3).
func RotationFromByte(b uint8) (Rotation, error) {
	if int(b) >= RotationArraySize {
		return 0, fmt.Errorf("invalid rotation byte %d", b)
	}
	return Rotation(b), nil
}

// Byte encodes the rotation using the language-boundary u8 encoding.
func (r Rotation) Byte() uint8 { return uint8(r) }

// CW returns the rotation one quarter turn clockwise.
func (r Rotation) CW() Rotation { return (r + 1) % 4 }

// CCW returns the rotation one quarter turn counter-clockwise.
func (r Rotation) CCW() Rotation { return (r + 3) % 4 }

// Flip returns the 180 degree rotation.
func (r Rotation) Flip() Rotation { return (r + 2) % 4 }

// SpinClass classifies how a placement was achieved, for scoring purposes.
type SpinClass uint8

const (
	NoSpin SpinClass = iota
	MiniSpin
	FullSpin

	SpinClassArraySize = int(iota)
)

var spinNames = [SpinClassArraySize]string{"none", "mini", "full"}

func (s SpinClass) String() string {
	if int(s) >= SpinClassArraySize {
		return fmt.Sprintf("SpinClass(%d)", s)
	}
	return spinNames[s]
}

// SpinClassFromByte parses the u8 encoding used at language boundaries
// (none=0, mini=1, full=2).
func SpinClassFromByte(b uint8) (SpinClass, error) {
	if int(b) >= SpinClassArraySize {
		return 0, fmt.Errorf("invalid spin class byte %d", b)
	}
	return SpinClass(b), nil
}

// Byte encodes the spin class using the language-boundary u8 encoding.
func (s SpinClass) Byte() uint8 { return uint8(s) }

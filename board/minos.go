package board

// Offset is a mino position relative to a piece's pivot cell. Dx is the
// column delta (east positive), Dy is the row delta (up positive).
type Offset struct {
	Dx, Dy int
}

// minoTable[piece][rotation] holds the four mino offsets for that
// (piece, rotation) pair, relative to the pivot. O is rotation-invariant
// (only North is populated, but all four entries are filled with the same
// value so callers never need to special-case it). S/Z reuse the same
// shape for {North,South} and {East,West} respectively -- see
// canonicalFolds/Canonicalize below for how the engine collapses the duplicate
// orientations rather than storing the shape twice.
var minoTable = [PieceArraySize][RotationArraySize][4]Offset{
	I: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		East:  {{0, 1}, {0, 0}, {0, -1}, {0, -2}},
		South: {{-1, -1}, {0, -1}, {1, -1}, {2, -1}},
		West:  {{1, 1}, {1, 0}, {1, -1}, {1, -2}},
	},
	O: {
		North: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		East:  {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		South: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		West:  {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	T: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		East:  {{0, -1}, {0, 0}, {0, 1}, {1, 0}},
		South: {{-1, 0}, {0, 0}, {1, 0}, {0, -1}},
		West:  {{0, -1}, {0, 0}, {0, 1}, {-1, 0}},
	},
	S: {
		North: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		East:  {{0, 1}, {0, 0}, {1, 0}, {1, -1}},
		South: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		West:  {{0, 1}, {0, 0}, {1, 0}, {1, -1}},
	},
	Z: {
		North: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
		East:  {{1, 1}, {1, 0}, {0, 0}, {0, -1}},
		South: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
		West:  {{1, 1}, {1, 0}, {0, 0}, {0, -1}},
	},
	J: {
		North: {{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
		East:  {{0, 1}, {0, 0}, {0, -1}, {1, 1}},
		South: {{-1, 0}, {0, 0}, {1, 0}, {1, -1}},
		West:  {{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
	},
	L: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
		East:  {{0, 1}, {0, 0}, {0, -1}, {1, -1}},
		South: {{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		West:  {{-1, 1}, {0, 1}, {0, 0}, {0, -1}},
	},
}

// Minos returns the four mino offsets for (piece, rotation).
func Minos(p Piece, r Rotation) [4]Offset {
	return minoTable[p][r]
}

// spawnColumn is the pivot column every piece spawns at: columns 4 and 5
// straddle the centre of a 10-wide field, and every mino table above is
// built around that straddle.
const spawnColumn = 4

// spawnRow is the pivot row every piece spawns at. Two conventions exist
// in published implementations (row 20 and row 21 counting from a
// bottom-indexed row 0 over a 20-row visible matrix with a hidden buffer
// above); this module picks row 20, see DESIGN.md for the rationale.
const spawnRow = 20

// SpawnX returns the spawn pivot column for any piece.
func SpawnX(Piece) int { return spawnColumn }

// SpawnY returns the spawn pivot row for any piece.
func SpawnY(Piece) int { return spawnRow }

// canonicalFold gives, per (piece, rotation), the rotation it folds non-canonical
// orientations into, and the (dx, dy) translation applied to a raw hit in
// the non-canonical orientation to reach the equivalent canonical
// coordinate. Only S, Z and I have a non-trivial fold; O collapses all
// four orientations into North with zero translation; T, J, L never fold.
type canonicalFold struct {
	canonical Rotation
	dx, dy    int
}

var canonicalFolds = map[Piece]map[Rotation]canonicalFold{
	O: {
		North: {North, 0, 0},
		East:  {North, 0, 0},
		South: {North, 0, 0},
		West:  {North, 0, 0},
	},
	I: {
		North: {North, 0, 0},
		South: {North, 0, -1},
		East:  {East, 0, 0},
		West:  {East, 1, 0},
	},
	S: {
		North: {North, 0, 0},
		South: {North, 0, 0},
		East:  {East, 0, 0},
		West:  {East, 0, 0},
	},
	Z: {
		North: {North, 0, 0},
		South: {North, 0, 0},
		East:  {East, 0, 0},
		West:  {East, 0, 0},
	},
}

// Canonicalize maps a raw (rotation, x, y) placement pivot to its
// canonical equivalent. T, J, L always canonicalize to themselves.
func Canonicalize(p Piece, r Rotation, x, y int) (Rotation, int, int) {
	folds, ok := canonicalFolds[p]
	if !ok {
		return r, x, y
	}
	f := folds[r]
	return f.canonical, x + f.dx, y + f.dy
}

package hanoi

// Pole identifies one of the three fixed pegs.
type Pole byte

const (
	PoleStart  Pole = 0
	PoleMiddle Pole = 1
	PoleEnd    Pole = 2
)

// PoleCount never varies; the three poles have static roles.
const PoleCount = 3

var PoleDictionary = map[Pole]string{
	PoleStart:  "start",
	PoleMiddle: "middle",
	PoleEnd:    "end",
}

func (p Pole) String() string {
	if s, ok := PoleDictionary[p]; ok {
		return s
	}
	return "invalid"
}

// MoveKind classifies a move: the smallest disk follows a fixed cycle,
// every other move is forced.
type MoveKind byte

const (
	MoveSmallestDisk MoveKind = 1
	MoveOtherDisk    MoveKind = 2
)

var MoveKindDictionary = map[MoveKind]string{
	MoveSmallestDisk: "smallestDisk",
	MoveOtherDisk:    "otherDisk",
}

func (k MoveKind) String() string {
	if s, ok := MoveKindDictionary[k]; ok {
		return s
	}
	return "invalid"
}

// Direction is the fixed travel cycle of the smallest disk, decided once
// per solve from the parity of the disk count.
type Direction byte

const (
	// DirectionForward cycles start -> middle -> end -> start (even disk counts).
	DirectionForward Direction = 1
	// DirectionBackward cycles start -> end -> middle -> start (odd disk counts).
	DirectionBackward Direction = 2
)

var DirectionDictionary = map[Direction]string{
	DirectionForward:  "forward",
	DirectionBackward: "backward",
}

func (d Direction) String() string {
	if s, ok := DirectionDictionary[d]; ok {
		return s
	}
	return "invalid"
}

// Move is one disk transfer between two poles.
type Move struct {
	From Pole
	To   Pole
	Kind MoveKind
}

// MaxDisks keeps the total move count 2^N - 1 inside a uint64.
const MaxDisks = 62

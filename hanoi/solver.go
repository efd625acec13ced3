package hanoi

// Selector decides the next move from the current board alone. It carries no
// history: the only state is the smallest-disk travel cycle, fixed once from
// the parity of the disk count, plus whatever the board shows right now.
type Selector struct {
	disks     int
	direction Direction
	// next[p] is the pole after p in the smallest-disk cycle.
	next [PoleCount]Pole
}

// NewSelector fixes the smallest-disk cycle for a game of n disks.
// Odd disk counts send the smallest disk backward (start -> end -> middle),
// even counts send it forward (start -> middle -> end).
func NewSelector(n int) *Selector {
	s := &Selector{disks: n}
	if n%2 == 0 {
		s.direction = DirectionForward
		s.next = [PoleCount]Pole{PoleStart: PoleMiddle, PoleMiddle: PoleEnd, PoleEnd: PoleStart}
	} else {
		s.direction = DirectionBackward
		s.next = [PoleCount]Pole{PoleStart: PoleEnd, PoleMiddle: PoleStart, PoleEnd: PoleMiddle}
	}
	return s
}

// Direction returns the fixed travel cycle of the smallest disk.
func (s *Selector) Direction() Direction { return s.direction }

// Next returns the single legal move for the 1-based move count. Odd counts
// move the smallest disk along the fixed cycle, even counts move the one
// other disk that can legally travel. The board is only read.
func (s *Selector) Next(b *Board, moveCount uint64) (Move, error) {
	if moveCount%2 == 1 {
		return s.smallestDiskMove(b)
	}
	return s.otherDiskMove(b)
}

// smallestDiskMove finds disk 1 (always on top of whichever pole holds it)
// and sends it to the next pole in the fixed cycle.
func (s *Selector) smallestDiskMove(b *Board) (Move, error) {
	for p := Pole(0); p < PoleCount; p++ {
		if top, ok := b.Top(p); ok && top == 1 {
			return Move{From: p, To: s.next[p], Kind: MoveSmallestDisk}, nil
		}
	}
	return Move{}, errInvariant("smallest disk is not on top of any pole")
}

// otherDiskMove picks the move between the two poles not topped by the
// smallest disk. Treating an empty pole as an infinitely large top, the pole
// with the smaller top is the source; exactly one direction is ever legal.
func (s *Selector) otherDiskMove(b *Board) (Move, error) {
	var candidates []Pole
	for p := Pole(0); p < PoleCount; p++ {
		if top, ok := b.Top(p); ok && top == 1 {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) != 2 {
		return Move{}, errInvariant("expected 2 poles without the smallest disk, found %d", len(candidates))
	}

	first, firstOk := b.Top(candidates[0])
	second, secondOk := b.Top(candidates[1])
	switch {
	case !firstOk && !secondOk:
		return Move{}, errInvariant("no legal move: both candidate poles are empty")
	case !secondOk:
		return Move{From: candidates[0], To: candidates[1], Kind: MoveOtherDisk}, nil
	case !firstOk:
		return Move{From: candidates[1], To: candidates[0], Kind: MoveOtherDisk}, nil
	case first == second:
		// Two disks of one size means the board was corrupted externally.
		return Move{}, errInvariant("ambiguous move: both candidate poles topped by disk %d", first)
	case first < second:
		return Move{From: candidates[0], To: candidates[1], Kind: MoveOtherDisk}, nil
	default:
		return Move{From: candidates[1], To: candidates[0], Kind: MoveOtherDisk}, nil
	}
}

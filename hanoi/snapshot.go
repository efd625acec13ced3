package hanoi

// Snapshot is an immutable copy of the board after a move. The renderer and
// the wire codec read it; nothing in move selection does.
type Snapshot struct {
	Disks int
	Poles [PoleCount][]int
}

// PoleOf returns the pole currently holding the disk of the given size,
// or false if no such disk exists on the board.
func (s Snapshot) PoleOf(size int) (Pole, bool) {
	for p := Pole(0); p < PoleCount; p++ {
		for _, d := range s.Poles[p] {
			if d == size {
				return p, true
			}
		}
	}
	return 0, false
}

// Gaps counts the breaks in the disk ordering: one if the largest disk is
// not on the end pole, plus one for every pair of disks sized k+1 and k
// resting on different poles. A solved board has zero gaps. The value is a
// display diagnostic only; move selection never reads it.
func (s Snapshot) Gaps() int {
	gaps := 0
	// The virtual disk N+1 never moves off the end pole.
	previous := PoleEnd
	for size := s.Disks; size >= 1; size-- {
		p, ok := s.PoleOf(size)
		if !ok {
			continue
		}
		if p != previous {
			gaps++
			previous = p
		}
	}
	return gaps
}

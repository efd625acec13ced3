package hanoi

import "fmt"

// Board holds the three poles and their disk stacks. Disks are plain sizes,
// 1 (smallest) through N (largest); within a stack the bottom element is
// index 0. The board is the only mutable state of a solve.
type Board struct {
	disks int
	poles [PoleCount][]int
}

// NewBoard stacks all n disks on the start pole, largest at the bottom.
func NewBoard(n int) (*Board, error) {
	if n < 0 {
		return nil, fmt.Errorf("disk count must be >= 0, got %d", n)
	}
	if n > MaxDisks {
		return nil, fmt.Errorf("disk count must be <= %d, got %d", MaxDisks, n)
	}
	b := &Board{disks: n}
	for size := n; size >= 1; size-- {
		b.poles[PoleStart] = append(b.poles[PoleStart], size)
	}
	return b, nil
}

// Disks returns the total disk count N.
func (b *Board) Disks() int { return b.disks }

// Top returns the size of the disk on top of p, or false if p is empty.
func (b *Board) Top(p Pole) (int, bool) {
	stack := b.poles[p]
	if len(stack) == 0 {
		return 0, false
	}
	return stack[len(stack)-1], true
}

// Apply removes the top disk of m.From and pushes it onto m.To, enforcing
// legality: the source must be non-empty and the destination top (if any)
// must be larger than the moved disk.
func (b *Board) Apply(m Move) error {
	disk, ok := b.Top(m.From)
	if !ok {
		return &IllegalMoveError{From: m.From, To: m.To, Reason: "source pole is empty"}
	}
	if onTop, ok := b.Top(m.To); ok && onTop < disk {
		return &IllegalMoveError{
			From:   m.From,
			To:     m.To,
			Disk:   disk,
			OnTop:  onTop,
			Reason: fmt.Sprintf("disk %d cannot rest on smaller disk %d", disk, onTop),
		}
	}
	src := b.poles[m.From]
	b.poles[m.From] = src[:len(src)-1]
	b.poles[m.To] = append(b.poles[m.To], disk)
	return nil
}

// Solved reports whether every disk sits on the end pole.
func (b *Board) Solved() bool {
	return len(b.poles[PoleEnd]) == b.disks
}

// Snapshot returns a deep copy of the current pole contents.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{Disks: b.disks}
	for p := range b.poles {
		s.Poles[p] = append([]int{}, b.poles[p]...)
	}
	return s
}

package hanoi

import (
	"errors"
	"testing"
)

func TestSelectorDirectionByParity(t *testing.T) {
	if d := NewSelector(3).Direction(); d != DirectionBackward {
		t.Fatalf("3 disks: direction = %v, want backward", d)
	}
	if d := NewSelector(4).Direction(); d != DirectionForward {
		t.Fatalf("4 disks: direction = %v, want forward", d)
	}
}

func TestSmallestDiskCycleOddCount(t *testing.T) {
	// Odd disk count: start -> end -> middle -> start.
	s := NewSelector(3)
	b, _ := NewBoard(3)

	move, err := s.Next(b, 1)
	if err != nil {
		t.Fatalf("Next err: %v", err)
	}
	if move.Kind != MoveSmallestDisk || move.From != PoleStart || move.To != PoleEnd {
		t.Fatalf("move 1 = %+v, want smallest start->end", move)
	}
}

func TestSmallestDiskCycleEvenCount(t *testing.T) {
	// Even disk count: start -> middle -> end -> start.
	s := NewSelector(4)
	b, _ := NewBoard(4)

	move, err := s.Next(b, 1)
	if err != nil {
		t.Fatalf("Next err: %v", err)
	}
	if move.Kind != MoveSmallestDisk || move.From != PoleStart || move.To != PoleMiddle {
		t.Fatalf("move 1 = %+v, want smallest start->middle", move)
	}
}

func TestOtherDiskMoveFillsEmptyPole(t *testing.T) {
	s := NewSelector(3)
	b, _ := NewBoard(3)
	if err := b.Apply(Move{From: PoleStart, To: PoleEnd}); err != nil {
		t.Fatal(err)
	}

	// Disk 1 sits on end; the forced move is disk 2 from start to the
	// empty middle pole.
	move, err := s.Next(b, 2)
	if err != nil {
		t.Fatalf("Next err: %v", err)
	}
	if move.Kind != MoveOtherDisk || move.From != PoleStart || move.To != PoleMiddle {
		t.Fatalf("move 2 = %+v, want other start->middle", move)
	}
}

func TestOtherDiskMovePicksSmallerTop(t *testing.T) {
	s := NewSelector(3)
	b, _ := NewBoard(3)
	for _, m := range []Move{
		{From: PoleStart, To: PoleEnd},
		{From: PoleStart, To: PoleMiddle},
	} {
		if err := b.Apply(m); err != nil {
			t.Fatal(err)
		}
	}
	if err := b.Apply(Move{From: PoleEnd, To: PoleMiddle}); err != nil {
		t.Fatal(err)
	}
	if err := b.Apply(Move{From: PoleStart, To: PoleEnd}); err != nil {
		t.Fatal(err)
	}

	// Board now: start empty, middle=[2 1], end=[3]. Disk 1 tops middle, so
	// the candidates are start (empty, infinite top) and end (top 3): the
	// forced transfer takes disk 3 to the empty pole.
	move, err := s.Next(b, 6)
	if err != nil {
		t.Fatalf("Next err: %v", err)
	}
	if move.Kind != MoveOtherDisk {
		t.Fatalf("move kind = %v, want otherDisk", move.Kind)
	}
	if top, ok := b.Top(move.From); !ok || top == 1 {
		t.Fatalf("other-disk move picked pole topped by %d", top)
	}
}

func TestOtherDiskMoveWithNoCandidateFails(t *testing.T) {
	// One disk: after its single move there is no even-count move at all.
	s := NewSelector(1)
	b, _ := NewBoard(1)
	if err := b.Apply(Move{From: PoleStart, To: PoleEnd}); err != nil {
		t.Fatal(err)
	}

	_, err := s.Next(b, 2)
	var invariant InvariantError
	if !errors.As(err, &invariant) {
		t.Fatalf("expected InvariantError, got %v", err)
	}
}

func TestSelectorIsPureReadOfBoard(t *testing.T) {
	s := NewSelector(5)
	b, _ := NewBoard(5)
	if err := b.Apply(Move{From: PoleStart, To: PoleEnd}); err != nil {
		t.Fatal(err)
	}
	before := b.Snapshot()

	// Selecting either kind of move must leave the board untouched.
	for _, count := range []uint64{1, 2} {
		if _, err := s.Next(b, count); err != nil {
			t.Fatalf("Next(count=%d) err: %v", count, err)
		}
	}
	after := b.Snapshot()
	for p := Pole(0); p < PoleCount; p++ {
		if len(before.Poles[p]) != len(after.Poles[p]) {
			t.Fatalf("selector mutated pole %v", p)
		}
	}
}

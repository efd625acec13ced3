package hanoi

import "testing"

func TestGapsCountsOrderingBreaks(t *testing.T) {
	// Disk 1 on start, disks 2 and 3 on middle, disk 4 on start: the largest
	// disk is off the end pole, 4/3 are split, 3/2 share a pole, 2/1 are
	// split. Three gaps.
	snap := Snapshot{
		Disks: 4,
		Poles: [PoleCount][]int{
			PoleStart:  {4, 1},
			PoleMiddle: {3, 2},
			PoleEnd:    {},
		},
	}
	if got := snap.Gaps(); got != 3 {
		t.Fatalf("Gaps() = %d, want 3", got)
	}
}

func TestGapsZeroOnlyWhenSolved(t *testing.T) {
	solved := Snapshot{Disks: 3, Poles: [PoleCount][]int{PoleEnd: {3, 2, 1}}}
	if got := solved.Gaps(); got != 0 {
		t.Fatalf("solved board Gaps() = %d, want 0", got)
	}
	fresh := Snapshot{Disks: 3, Poles: [PoleCount][]int{PoleStart: {3, 2, 1}}}
	if got := fresh.Gaps(); got != 1 {
		t.Fatalf("fresh board Gaps() = %d, want 1", got)
	}
}

func TestPoleOf(t *testing.T) {
	snap := Snapshot{Disks: 2, Poles: [PoleCount][]int{PoleStart: {2}, PoleEnd: {1}}}
	if p, ok := snap.PoleOf(1); !ok || p != PoleEnd {
		t.Fatalf("PoleOf(1) = %v,%v, want end,true", p, ok)
	}
	if _, ok := snap.PoleOf(9); ok {
		t.Fatal("PoleOf(9) found a disk that does not exist")
	}
}

package tape

import (
	"fmt"

	"hanoi-lite/hanoi"
)

// Verify replays the tape against a fresh board and checks that every
// recorded move is legal, correctly classified, and matches the recorded
// pole stacks, that the step count is 2^N - 1, and that the final board is
// solved. The tape itself is the only input; no solver is consulted.
func Verify(t *SolveTape) error {
	if t == nil {
		return &TapeError{StepIndex: -1, Reason: "empty_tape", Message: "tape is nil"}
	}
	if t.TapeVersion != TapeVersion {
		return &TapeError{
			StepIndex: -1,
			Reason:    "version_mismatch",
			Message:   fmt.Sprintf("tape version %d, supported %d", t.TapeVersion, TapeVersion),
		}
	}

	board, err := hanoi.NewBoard(t.Disks)
	if err != nil {
		return &TapeError{StepIndex: -1, Reason: "bad_disk_count", Message: err.Error()}
	}
	if want := hanoi.TotalMoves(t.Disks); uint64(len(t.Steps)) != want {
		return &TapeError{
			StepIndex: -1,
			Reason:    "wrong_step_count",
			Message:   fmt.Sprintf("tape has %d steps, a %d-disk solve has %d", len(t.Steps), t.Disks, want),
		}
	}

	for i, step := range t.Steps {
		if step.Seq != uint64(i+1) {
			return &TapeError{
				StepIndex: i,
				Reason:    "bad_sequence",
				Message:   fmt.Sprintf("seq %d at position %d", step.Seq, i),
			}
		}
		move, err := parseMove(step)
		if err != nil {
			return &TapeError{StepIndex: i, Reason: "bad_move", Message: err.Error()}
		}
		if wantSmallest := step.Seq%2 == 1; wantSmallest != (move.Kind == hanoi.MoveSmallestDisk) {
			return &TapeError{
				StepIndex: i,
				Reason:    "bad_classification",
				Message:   fmt.Sprintf("seq %d recorded as %s", step.Seq, step.Kind),
			}
		}
		if err := board.Apply(move); err != nil {
			return &TapeError{StepIndex: i, Reason: "illegal_move", Message: err.Error()}
		}
		if !polesEqual(board.Snapshot().Poles, step.Poles) {
			return &TapeError{
				StepIndex: i,
				Reason:    "board_mismatch",
				Message:   fmt.Sprintf("recorded stacks diverge from replayed board at seq %d", step.Seq),
			}
		}
	}

	if !board.Solved() {
		return &TapeError{
			StepIndex: len(t.Steps) - 1,
			Reason:    "not_solved",
			Message:   "tape ends before all disks reach the end pole",
		}
	}
	return nil
}

func parseMove(step TapeStep) (hanoi.Move, error) {
	from, ok := parsePole(step.From)
	if !ok {
		return hanoi.Move{}, fmt.Errorf("unknown pole %q", step.From)
	}
	to, ok := parsePole(step.To)
	if !ok {
		return hanoi.Move{}, fmt.Errorf("unknown pole %q", step.To)
	}
	kind, ok := parseKind(step.Kind)
	if !ok {
		return hanoi.Move{}, fmt.Errorf("unknown move kind %q", step.Kind)
	}
	return hanoi.Move{From: from, To: to, Kind: kind}, nil
}

func parsePole(name string) (hanoi.Pole, bool) {
	for p, s := range hanoi.PoleDictionary {
		if s == name {
			return p, true
		}
	}
	return 0, false
}

func parseKind(name string) (hanoi.MoveKind, bool) {
	for k, s := range hanoi.MoveKindDictionary {
		if s == name {
			return k, true
		}
	}
	return 0, false
}

func polesEqual(a, b [3][]int) bool {
	for p := range a {
		if len(a[p]) != len(b[p]) {
			return false
		}
		for i := range a[p] {
			if a[p][i] != b[p][i] {
				return false
			}
		}
	}
	return true
}

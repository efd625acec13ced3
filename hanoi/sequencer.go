package hanoi

// Step is one element of a solve: the 1-based move count, the move that was
// played, and the board after it was applied.
type Step struct {
	Count uint64
	Move  Move
	Board Snapshot
}

// Solve drives a single game from all disks on the start pole to all disks
// on the end pole, one Next call per move. A Solve is single-use; construct
// a fresh one to restart. It owns its board exclusively, so independent
// solves may run in parallel without coordination.
type Solve struct {
	board     *Board
	selector  *Selector
	moveCount uint64
	total     uint64
	done      bool
}

// NewSolve prepares a solve of n disks, 0 <= n <= MaxDisks.
func NewSolve(n int) (*Solve, error) {
	board, err := NewBoard(n)
	if err != nil {
		return nil, err
	}
	return &Solve{
		board:    board,
		selector: NewSelector(n),
		total:    TotalMoves(n),
	}, nil
}

// TotalMoves returns 2^n - 1, the optimal move count for n disks.
func TotalMoves(n int) uint64 {
	if n <= 0 {
		return 0
	}
	return 1<<uint(n) - 1
}

// Total returns the number of steps this solve will yield.
func (s *Solve) Total() uint64 { return s.total }

// Direction returns the smallest-disk travel cycle fixed for this solve.
func (s *Solve) Direction() Direction { return s.selector.Direction() }

// Next plays one move and returns it with the resulting board snapshot.
// The second return value is false once the solve has finished; n = 0
// finishes immediately. A non-nil error means an invariant broke and the
// solve is dead.
func (s *Solve) Next() (Step, bool, error) {
	if s.done || s.board.Solved() {
		s.done = true
		return Step{}, false, nil
	}
	// Termination coincides with the move count by construction; this guard
	// only catches regressions in the selector.
	if s.moveCount >= s.total {
		s.done = true
		return Step{}, false, errInvariant("move count exceeded %d without solving", s.total)
	}

	s.moveCount++
	move, err := s.selector.Next(s.board, s.moveCount)
	if err != nil {
		s.done = true
		return Step{}, false, err
	}
	if err := s.board.Apply(move); err != nil {
		s.done = true
		return Step{}, false, err
	}
	return Step{Count: s.moveCount, Move: move, Board: s.board.Snapshot()}, true, nil
}

// maxStepAlloc bounds the initial capacity of collected step slices; a big
// solve grows by append instead of preallocating 2^n - 1 elements up front.
const maxStepAlloc = 1 << 14

func stepAlloc(total uint64) int {
	if total > maxStepAlloc {
		return maxStepAlloc
	}
	return int(total)
}

// Steps runs a full solve of n disks and collects every step.
func Steps(n int) ([]Step, error) {
	solve, err := NewSolve(n)
	if err != nil {
		return nil, err
	}
	steps := make([]Step, 0, stepAlloc(solve.Total()))
	for {
		step, ok, err := solve.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return steps, nil
		}
		steps = append(steps, step)
	}
}

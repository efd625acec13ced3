package tape

// TapeVersion is bumped whenever the tape layout changes incompatibly.
const TapeVersion = 1

// SolveSpec describes the solve to record.
type SolveSpec struct {
	Disks int    `json:"disks"`
	Label string `json:"label,omitempty"`
}

// SolveTape is a complete recorded solve: every move with the resulting
// pole stacks, in play order.
type SolveTape struct {
	TapeVersion int        `json:"tape_version"`
	SolveID     string     `json:"solve_id"`
	Label       string     `json:"label,omitempty"`
	Disks       int        `json:"disks"`
	Direction   string     `json:"direction"`
	Steps       []TapeStep `json:"steps"`
}

// TapeStep is one recorded move. Poles holds the three stacks after the
// move, bottom first, indexed start/middle/end.
type TapeStep struct {
	Seq   uint64   `json:"seq"`
	Kind  string   `json:"kind"`
	From  string   `json:"from"`
	To    string   `json:"to"`
	Gaps  int      `json:"gaps"`
	Poles [3][]int `json:"poles"`
}

package tape

// WireSolveTape is the camelCase shape sent to browser clients and stored
// by the ledger. The snake_case SolveTape stays the on-disk format.
type WireSolveTape struct {
	TapeVersion int            `json:"tapeVersion"`
	SolveID     string         `json:"solveId"`
	Label       string         `json:"label,omitempty"`
	Disks       int            `json:"disks"`
	Direction   string         `json:"direction"`
	Steps       []WireTapeStep `json:"steps"`
}

type WireTapeStep struct {
	Seq   uint64   `json:"seq"`
	Kind  string   `json:"kind"`
	From  string   `json:"from"`
	To    string   `json:"to"`
	Gaps  int      `json:"gaps"`
	Poles [3][]int `json:"poles"`
}

func ToWireSolveTape(t *SolveTape) *WireSolveTape {
	if t == nil {
		return nil
	}
	out := &WireSolveTape{
		TapeVersion: t.TapeVersion,
		SolveID:     t.SolveID,
		Label:       t.Label,
		Disks:       t.Disks,
		Direction:   t.Direction,
		Steps:       make([]WireTapeStep, 0, len(t.Steps)),
	}
	for _, s := range t.Steps {
		out.Steps = append(out.Steps, WireTapeStep{
			Seq:   s.Seq,
			Kind:  s.Kind,
			From:  s.From,
			To:    s.To,
			Gaps:  s.Gaps,
			Poles: s.Poles,
		})
	}
	return out
}

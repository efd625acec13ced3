package tape

import (
	"github.com/google/uuid"

	"hanoi-lite/hanoi"
)

// maxStepAlloc bounds the initial step-slice capacity; larger tapes grow by
// append.
const maxStepAlloc = 1 << 14

func stepAlloc(total uint64) int {
	if total > maxStepAlloc {
		return maxStepAlloc
	}
	return int(total)
}

// Generate runs a full solve for the spec and records every step.
func Generate(spec SolveSpec) (*SolveTape, error) {
	solve, err := hanoi.NewSolve(spec.Disks)
	if err != nil {
		return nil, &TapeError{StepIndex: -1, Reason: "engine_init_failed", Message: err.Error()}
	}

	out := &SolveTape{
		TapeVersion: TapeVersion,
		SolveID:     uuid.NewString(),
		Label:       spec.Label,
		Disks:       spec.Disks,
		Direction:   solve.Direction().String(),
		Steps:       make([]TapeStep, 0, stepAlloc(solve.Total())),
	}

	for {
		step, ok, err := solve.Next()
		if err != nil {
			return nil, &TapeError{
				StepIndex: len(out.Steps),
				Reason:    "solve_failed",
				Message:   err.Error(),
			}
		}
		if !ok {
			return out, nil
		}
		out.Steps = append(out.Steps, TapeStep{
			Seq:   step.Count,
			Kind:  step.Move.Kind.String(),
			From:  step.Move.From.String(),
			To:    step.Move.To.String(),
			Gaps:  step.Board.Gaps(),
			Poles: step.Board.Poles,
		})
	}
}

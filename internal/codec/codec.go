// Package codec converts engine types to the JSON envelopes that cross the
// websocket and land in the ledger.
package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"hanoi-lite/hanoi"
)

// Envelope type tags.
const (
	TypeSolveStart = "solveStart"
	TypeStep       = "step"
	TypeSolveEnd   = "solveEnd"
	TypeError      = "error"

	TypeSolveRequest  = "solve"
	TypeCancelRequest = "cancel"
)

// ServerEnvelope wraps every message the server sends. Exactly one payload
// pointer is set, matching Type.
type ServerEnvelope struct {
	Type       string      `json:"type"`
	ServerSeq  uint64      `json:"serverSeq"`
	ServerTsMs int64       `json:"serverTsMs"`
	SolveStart *SolveStart `json:"solveStart,omitempty"`
	Step       *StepEvent  `json:"step,omitempty"`
	SolveEnd   *SolveEnd   `json:"solveEnd,omitempty"`
	Error      *ErrorEvent `json:"error,omitempty"`
}

// ClientEnvelope wraps every message a client sends.
type ClientEnvelope struct {
	Type  string        `json:"type"`
	Solve *SolveRequest `json:"solve,omitempty"`
}

type SolveRequest struct {
	Disks int    `json:"disks"`
	Label string `json:"label,omitempty"`
}

type SolveStart struct {
	SolveID    string `json:"solveId"`
	Disks      int    `json:"disks"`
	Direction  string `json:"direction"`
	TotalMoves uint64 `json:"totalMoves"`
}

type StepEvent struct {
	Seq   uint64   `json:"seq"`
	Kind  string   `json:"kind"`
	From  string   `json:"from"`
	To    string   `json:"to"`
	Gaps  int      `json:"gaps"`
	Poles [3][]int `json:"poles"`
}

type SolveEnd struct {
	SolveID   string `json:"solveId"`
	Disks     int    `json:"disks"`
	Moves     uint64 `json:"moves"`
	ElapsedMs int64  `json:"elapsedMs"`
	Aborted   bool   `json:"aborted,omitempty"`
}

type ErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StepToEvent converts one sequencer step to its wire form.
func StepToEvent(step hanoi.Step) *StepEvent {
	return &StepEvent{
		Seq:   step.Count,
		Kind:  step.Move.Kind.String(),
		From:  step.Move.From.String(),
		To:    step.Move.To.String(),
		Gaps:  step.Board.Gaps(),
		Poles: step.Board.Poles,
	}
}

// Wrap stamps a payload into a server envelope. The payload must be one of
// the payload types above.
func Wrap(seq uint64, payload any) (*ServerEnvelope, error) {
	env := &ServerEnvelope{
		ServerSeq:  seq,
		ServerTsMs: time.Now().UnixMilli(),
	}
	switch p := payload.(type) {
	case *SolveStart:
		env.Type = TypeSolveStart
		env.SolveStart = p
	case *StepEvent:
		env.Type = TypeStep
		env.Step = p
	case *SolveEnd:
		env.Type = TypeSolveEnd
		env.SolveEnd = p
	case *ErrorEvent:
		env.Type = TypeError
		env.Error = p
	default:
		return nil, fmt.Errorf("unsupported payload type %T", payload)
	}
	return env, nil
}

// Encode marshals an envelope for the wire.
func Encode(env *ServerEnvelope) ([]byte, error) {
	return json.Marshal(env)
}

// DecodeClient parses a client envelope.
func DecodeClient(data []byte) (*ClientEnvelope, error) {
	var env ClientEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Type == "" {
		return nil, fmt.Errorf("client envelope missing type")
	}
	return &env, nil
}

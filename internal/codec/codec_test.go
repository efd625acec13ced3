package codec

import (
	"encoding/json"
	"testing"

	"hanoi-lite/hanoi"
)

func TestStepToEvent(t *testing.T) {
	steps, err := hanoi.Steps(2)
	if err != nil {
		t.Fatalf("Steps err: %v", err)
	}
	ev := StepToEvent(steps[0])
	if ev.Seq != 1 || ev.Kind != "smallestDisk" || ev.From != "start" || ev.To != "middle" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if len(ev.Poles[1]) != 1 || ev.Poles[1][0] != 1 {
		t.Fatalf("middle pole = %v, want [1]", ev.Poles[1])
	}
}

func TestWrapAndEncodeRoundTrip(t *testing.T) {
	env, err := Wrap(7, &SolveEnd{SolveID: "abc", Disks: 3, Moves: 7})
	if err != nil {
		t.Fatalf("Wrap err: %v", err)
	}
	if env.Type != TypeSolveEnd || env.ServerSeq != 7 {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	data, err := Encode(env)
	if err != nil {
		t.Fatalf("Encode err: %v", err)
	}
	var decoded ServerEnvelope
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if decoded.SolveEnd == nil || decoded.SolveEnd.Moves != 7 {
		t.Fatalf("round trip lost payload: %+v", decoded)
	}
}

func TestWrapRejectsUnknownPayload(t *testing.T) {
	if _, err := Wrap(1, "nonsense"); err == nil {
		t.Fatal("expected error for unsupported payload")
	}
}

func TestDecodeClient(t *testing.T) {
	env, err := DecodeClient([]byte(`{"type":"solve","solve":{"disks":4}}`))
	if err != nil {
		t.Fatalf("DecodeClient err: %v", err)
	}
	if env.Type != TypeSolveRequest || env.Solve == nil || env.Solve.Disks != 4 {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	if _, err := DecodeClient([]byte(`{}`)); err == nil {
		t.Fatal("expected error for missing type")
	}
	if _, err := DecodeClient([]byte(`not json`)); err == nil {
		t.Fatal("expected error for invalid json")
	}
}

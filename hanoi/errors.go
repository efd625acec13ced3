package hanoi

import "fmt"

// IllegalMoveError reports a structurally invalid transfer: an empty source
// pole, or a disk placed on top of a smaller one. Under a correct selector it
// never fires, but Apply enforces it on every call.
type IllegalMoveError struct {
	From   Pole
	To     Pole
	Disk   int // 0 when the source pole was empty
	OnTop  int // destination top at the time of the move, 0 when empty
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s->%s: %s", e.From, e.To, e.Reason)
}

// InvariantError signals a broken algorithm invariant: zero or multiple legal
// other-disk moves, a lost smallest disk, or a move count past 2^N - 1.
// It marks a programming error or an externally corrupted board, never an
// expected runtime condition.
type InvariantError string

func (e InvariantError) Error() string { return "invariant violated: " + string(e) }

func errInvariant(format string, args ...any) error {
	return InvariantError(fmt.Sprintf(format, args...))
}

// Package render draws board snapshots and step descriptions for terminals.
// It consumes what the sequencer emits and has no influence on move
// selection.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hanoi-lite/hanoi"
)

const (
	// Mast height above the tallest possible stack.
	heightMargin = 1
	spaceBetween = "   "

	charMast     = "|"
	charGround   = "."
	charDiskEven = "-"
	charDiskOdd  = "+"
)

var poleLabels = map[hanoi.Pole]string{
	hanoi.PoleStart:  "start pole (left)",
	hanoi.PoleMiddle: "middle pole (center)",
	hanoi.PoleEnd:    "end pole (right)",
}

// Renderer formats snapshots and steps. With Plain set it emits bare ASCII;
// otherwise lipgloss styling is applied.
type Renderer struct {
	Plain bool
}

// Diagram draws the three poles side by side. A disk of size s is 2*s+1
// characters wide, odd sizes drawn with '+', even with '-'; the mast pokes
// one row above the tallest stack and the ground is a dotted line.
func (r *Renderer) Diagram(snap hanoi.Snapshot) string {
	mastWidth := snap.Disks*2 + 1
	mastHeight := snap.Disks + heightMargin

	var sb strings.Builder
	for floor := mastHeight - 1; floor >= 0; floor-- {
		cells := make([]string, 0, hanoi.PoleCount)
		for p := hanoi.Pole(0); p < hanoi.PoleCount; p++ {
			cells = append(cells, r.floorCell(snap.Poles[p], floor, mastWidth))
		}
		sb.WriteString(strings.Join(cells, spaceBetween))
		sb.WriteByte('\n')
	}

	groundWidth := mastWidth*hanoi.PoleCount + len(spaceBetween)*(hanoi.PoleCount-1)
	sb.WriteString(r.style(styles.Muted, strings.Repeat(charGround, groundWidth)))
	sb.WriteByte('\n')
	return sb.String()
}

// floorCell renders one floor of one pole at fixed width.
func (r *Renderer) floorCell(stack []int, floor, mastWidth int) string {
	if floor >= len(stack) {
		pad := strings.Repeat(" ", (mastWidth-1)/2)
		return pad + r.style(styles.Pole, charMast) + pad
	}
	size := stack[floor]
	diskWidth := size*2 + 1
	pad := strings.Repeat(" ", (mastWidth-diskWidth)/2)
	ch := charDiskOdd
	if size%2 == 0 {
		ch = charDiskEven
	}
	disk := strings.Repeat(ch, diskWidth)
	if size == 1 {
		disk = r.style(styles.Smallest, disk)
	}
	return pad + disk + pad
}

// DescribeStep explains one played move the way the original driver did:
// the gap count, the movement type, and the two poles involved.
func (r *Renderer) DescribeStep(step hanoi.Step, direction hanoi.Direction) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", r.style(styles.Heading, fmt.Sprintf("move %d", step.Count)))
	fmt.Fprintf(&sb, "breaks in disk ordering: %d\n", step.Board.Gaps())
	fmt.Fprintf(&sb, "movement type:      %s\n", r.kindLabel(step.Move.Kind, direction))
	fmt.Fprintf(&sb, "source pole:        %s\n", poleLabels[step.Move.From])
	fmt.Fprintf(&sb, "destination pole:   %s\n", poleLabels[step.Move.To])
	return sb.String()
}

func (r *Renderer) kindLabel(kind hanoi.MoveKind, direction hanoi.Direction) string {
	if kind == hanoi.MoveOtherDisk {
		return r.style(styles.Other, "a disk other than the smallest")
	}
	label := "the smallest disk, backward"
	if direction == hanoi.DirectionForward {
		label = "the smallest disk, forward"
	}
	return r.style(styles.Smallest, label)
}

// Summary is the single closing line of a solve.
func (r *Renderer) Summary(disks int, moves uint64) string {
	return fmt.Sprintf("solved %d disks in %d moves", disks, moves)
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.Plain {
		return text
	}
	return s.Render(text)
}

package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines diffs two texts line by line.
func Lines(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

// Changed reports whether diffs contains any insertion or deletion.
func Changed(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

// WriteLines prints diffs with -/+ markers, keeping at most context
// unchanged lines around each change.
func WriteLines(w io.Writer, diffs []diffpatch.Diff, context int, colors bool) error {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	skip := color.New(color.FgCyan)
	for _, c := range []*color.Color{del, ins, skip} {
		if colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	for i := range diffs {
		diff := &diffs[i]
		lines := splitLines(diff.Text)
		var err error
		switch diff.Type {
		case diffpatch.DiffDelete:
			err = writeMarked(w, del, "-", lines)
		case diffpatch.DiffInsert:
			err = writeMarked(w, ins, "+", lines)
		case diffpatch.DiffEqual:
			err = writeContext(w, skip, lines, context, i == 0, i == len(diffs)-1)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeMarked(w io.Writer, c *color.Color, mark string, lines []string) error {
	for _, line := range lines {
		out := mark + line
		if c != nil {
			out = c.Sprint(out)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return nil
}

func writeContext(w io.Writer, skip *color.Color, lines []string, n int, first, last bool) error {
	head, tail := n, n
	if first {
		head = 0
	}
	if last {
		tail = 0
	}
	if head+tail >= len(lines) {
		return writeMarked(w, nil, " ", lines)
	}
	if err := writeMarked(w, nil, " ", lines[:head]); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, skip.Sprintf("@@ %d unchanged lines @@", len(lines)-head-tail)); err != nil {
		return err
	}
	return writeMarked(w, nil, " ", lines[len(lines)-tail:])
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

package content

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const noNewlineMarker = "\\ No newline at end of file\n"

// Diff renders a unified diff from the observed content to the desired one.
// A converged file has an empty diff; an absent file diffs against nothing.
func (ev *Evaluation) Diff(req Request) (string, error) {
	if ev.State == StateConverged {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(string(ev.Current)),
		B:        splitLines(req.Content),
		FromFile: "before: " + req.Path,
		ToFile:   "after: " + req.Path,
		Context:  3,
	})
}

// splitLines keeps line terminators so that a missing final newline shows up
// as a change instead of being normalized away.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		return lines[:len(lines)-1]
	}
	lines[len(lines)-1] += "\n" + noNewlineMarker
	return lines
}

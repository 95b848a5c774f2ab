package content

import (
	"strings"
	"testing"
)

func TestEvaluationDiff(t *testing.T) {
	tests := []struct {
		name     string
		eval     Evaluation
		content  string
		want     []string
		wantNone bool
	}{
		{
			name:     "converged",
			eval:     Evaluation{State: StateConverged},
			content:  "same\n",
			wantNone: true,
		},
		{
			name:    "changed line",
			eval:    Evaluation{State: StateDivergent, Current: []byte("a\nold\nc\n")},
			content: "a\nnew\nc\n",
			want:    []string{"--- before: /etc/app.conf\n", "+++ after: /etc/app.conf\n", "-old\n", "+new\n", " a\n"},
		},
		{
			name:    "absent file",
			eval:    Evaluation{State: StateAbsent},
			content: "line one\nline two\n",
			want:    []string{"@@ -0,0 +1,2 @@\n", "+line one\n", "+line two\n"},
		},
		{
			name:    "missing final newline",
			eval:    Evaluation{State: StateDivergent, Current: []byte("hello\n")},
			content: "hello",
			want:    []string{"-hello\n", "+hello\n" + noNewlineMarker},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.eval.Diff(Request{Path: "/etc/app.conf", Content: tt.content})
			if err != nil {
				t.Fatalf("Diff() error = %v", err)
			}
			if tt.wantNone {
				if got != "" {
					t.Errorf("Diff() = %q, want empty", got)
				}
				return
			}
			for _, fragment := range tt.want {
				if !strings.Contains(got, fragment) {
					t.Errorf("Diff() = %q, missing %q", got, fragment)
				}
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"one\n", 1},
		{"one\ntwo\n", 2},
		{"one\ntwo", 2},
	}

	for _, tt := range tests {
		if got := splitLines(tt.in); len(got) != tt.want {
			t.Errorf("splitLines(%q) = %d lines, want %d", tt.in, len(got), tt.want)
		}
	}
}

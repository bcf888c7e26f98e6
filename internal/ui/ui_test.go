package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 0, 10, "░░░░░░░░░░   0%"},
		{1, 2, 10, "█████░░░░░  50%"},
		{3, 3, 5, "█████ 100%"},
		{1, 1, 2, "█████ 100%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%d, %d, %d): got %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}

func TestPanelStringAlignsColoredLines(t *testing.T) {
	SetTheme("classic")
	SetColorMode("always")
	defer SetColorMode("auto")

	out := PanelString([]string{C(fgGreen, "✔ done"), "open item"})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	w := lipgloss.Width(lines[0])
	for i, ln := range lines {
		if got := lipgloss.Width(ln); got != w {
			t.Errorf("line %d width %d, want %d: %q", i, got, w, ln)
		}
	}
	if !strings.HasPrefix(lines[0], "┌") || !strings.HasPrefix(lines[3], "└") {
		t.Errorf("unexpected corners:\n%s", out)
	}
}

func TestMonoTheme(t *testing.T) {
	SetTheme("mono")
	defer func() {
		SetTheme("classic")
		SetColorMode("auto")
	}()

	if got := C(fgRed, "x"); got != "x" {
		t.Errorf("mono theme left color on: %q", got)
	}
	if Current().BoxChecked != "[x]" {
		t.Errorf("BoxChecked: got %q", Current().BoxChecked)
	}
	if !strings.HasPrefix(PanelString([]string{"a"}), "+---+") {
		t.Errorf("mono panel: %q", PanelString([]string{"a"}))
	}
}

func TestColorModes(t *testing.T) {
	defer SetColorMode("auto")

	SetColorMode("always")
	if got := C(fgRed, "x"); got != fgRed+"x"+reset {
		t.Errorf("always: got %q", got)
	}
	SetColorMode("never")
	if got := C(fgRed, "x"); got != "x" {
		t.Errorf("never: got %q", got)
	}
	SetColorMode("auto")
	var buf bytes.Buffer
	old := Stdout
	Stdout = &buf
	defer func() { Stdout = old }()
	if got := C(fgRed, "x"); got != "x" {
		t.Errorf("auto on a buffer: got %q", got)
	}
}

func TestOKAndFail(t *testing.T) {
	var out, errOut bytes.Buffer
	oldOut, oldErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	defer func() { Stdout, Stderr = oldOut, oldErr }()

	OK("added")
	Fail("broken")

	if got := out.String(); got != "✔ added\n" {
		t.Errorf("OK: got %q", got)
	}
	if got := errOut.String(); got != "✖ broken\n" {
		t.Errorf("Fail: got %q", got)
	}
}

package menugfx

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestClampScissor(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       [4]int
	}{
		{"inside", 10, 10, 100, 100, [4]int{10, 10, 100, 100}},
		{"negative x", -10, 5, 100, 50, [4]int{0, 5, 90, 50}},
		{"negative y past height", 5, -20, 50, 10, [4]int{5, 0, 50, 0}},
		{"x off screen", 2000, 5, 10, 10, [4]int{0, 5, 0, 10}},
		{"y off screen", 5, 1080, 10, 10, [4]int{5, 0, 10, 0}},
		{"overhang", 1900, 1000, 100, 100, [4]int{1900, 1000, 20, 80}},
		{"negative size", 10, 10, -5, -5, [4]int{10, 10, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := ClampScissor(tt.x, tt.y, tt.w, tt.h, 1920, 1080)
			if got := [4]int{x, y, w, h}; got != tt.want {
				t.Errorf("ClampScissor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScissorForwardsClamped(t *testing.T) {
	m := newMock("software")
	d := bind(t, m)

	d.ScissorBegin(-10, 0, 200, 2000)
	if m.scissor != [4]int{0, 0, 190, 1080} {
		t.Errorf("driver scissor = %v, want [0 0 190 1080]", m.scissor)
	}
	d.ScissorEnd()
	if m.calls[len(m.calls)-1] != "scissor_end" {
		t.Errorf("calls = %v", m.calls)
	}
}

func TestScissorCheckWarns(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	d := bind(t, newMock("software"), WithScissorCheck(true))
	d.ScissorBegin(0, 0, 10, 10)
	d.ScissorEnd()
	if strings.Contains(buf.String(), "Scissor") {
		t.Errorf("balanced pair logged: %s", buf.String())
	}

	d.ScissorBegin(0, 0, 10, 10)
	d.ScissorBegin(0, 0, 20, 20)
	d.ScissorEnd()
	d.ScissorEnd()
	out := buf.String()
	if !strings.Contains(out, "ScissorBegin without matching ScissorEnd") {
		t.Errorf("missing begin warning in %q", out)
	}
	if !strings.Contains(out, "ScissorEnd without ScissorBegin") {
		t.Errorf("missing end warning in %q", out)
	}
}

func TestScissorUncheckedByDefault(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	d := bind(t, newMock("software"))
	d.ScissorEnd()
	d.ScissorBegin(0, 0, 1, 1)
	d.ScissorBegin(0, 0, 1, 1)
	if strings.Contains(buf.String(), "Scissor") {
		t.Errorf("unchecked display logged: %s", buf.String())
	}
}

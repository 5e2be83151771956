package menugfx

import "testing"

type fakeAnimator bool

func (a fakeAnimator) Active() bool { return bool(a) }

func TestUpdatePending(t *testing.T) {
	tests := []struct {
		anim, dirty bool
		want        bool
	}{
		{false, false, false},
		{true, false, true},
		{false, true, true},
		{true, true, true},
	}
	for _, tt := range tests {
		if got := UpdatePending(tt.anim, tt.dirty); got != tt.want {
			t.Errorf("UpdatePending(%v, %v) = %v, want %v", tt.anim, tt.dirty, got, tt.want)
		}
	}
}

func TestDisplayUpdatePending(t *testing.T) {
	d := bind(t, newMock("software"))

	if d.UpdatePending(nil) {
		t.Error("UpdatePending(nil) = true on a clean display")
	}
	if !d.UpdatePending(fakeAnimator(true)) {
		t.Error("UpdatePending(active) = false")
	}

	d.DrawQuad(0, 0, 1, 1, nil, 0)
	if !d.UpdatePending(fakeAnimator(false)) {
		t.Error("UpdatePending() = false after a draw")
	}
	if !d.Dirty() {
		t.Error("UpdatePending() cleared the dirty flag")
	}
	d.ClearDirty()
	if d.UpdatePending(fakeAnimator(false)) {
		t.Error("UpdatePending() = true after ClearDirty")
	}
}

package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionSelect) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionSelect)
	f.Set(ActionUpLeft)
	if !f.Has(ActionSelect) || !f.Has(ActionUpLeft) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionSelect) {
		t.Error("Clear should drop actions")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	f.AddPointer(PointerEvent{Kind: PointerPress, X: 3, Y: 4})
	f.AddPointer(PointerEvent{Kind: PointerRelease, X: 9, Y: 4})

	clone := f.Clone()
	f.Clear()

	if len(f.Pointer) != 0 {
		t.Errorf("Clear should drop pointer events, got %d", len(f.Pointer))
	}
	if len(clone.Pointer) != 2 {
		t.Fatalf("clone should keep 2 pointer events, got %d", len(clone.Pointer))
	}
	if clone.Pointer[1].Kind != PointerRelease || clone.Pointer[1].X != 9 {
		t.Errorf("unexpected clone event %+v", clone.Pointer[1])
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionDownRight, "DownRight"},
		{ActionSelect, "Select"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.a, got, tc.want)
		}
	}
}

package easyscreen

import (
	"testing"
	"time"
)

func TestTimeoutModeEquality(t *testing.T) {
	// Negative waits clamp to zero at construction, so the values
	// compare equal afterwards
	if WaitUpTo(-5) != WaitUpTo(0) {
		t.Error("Expected WaitUpTo(-5) to equal WaitUpTo(0)")
	}
	if WaitUpTo(0) != Immediate {
		t.Error("Expected WaitUpTo(0) to equal Immediate")
	}
	if WaitUpTo(100) != WaitUpTo(100) {
		t.Error("Expected equal waits to compare equal")
	}
	if WaitUpTo(100) == WaitUpTo(50) {
		t.Error("Expected different waits to compare unequal")
	}
	if Never == Immediate {
		t.Error("Expected Never and Immediate to be distinct")
	}
}

func TestTimeoutModeZeroValue(t *testing.T) {
	// The zero value blocks forever
	var m TimeoutMode
	if m != Never {
		t.Error("Expected zero value to equal Never")
	}
	if !m.Blocking() {
		t.Error("Expected zero value to block")
	}
	if m.Wait() != 0 {
		t.Errorf("Expected zero wait, got %v", m.Wait())
	}
}

func TestTimeoutModeAccessors(t *testing.T) {
	if Immediate.Blocking() {
		t.Error("Expected Immediate not to block")
	}
	if Immediate.Wait() != 0 {
		t.Errorf("Expected zero wait for Immediate, got %v", Immediate.Wait())
	}

	m := WaitUpTo(250)
	if m.Blocking() {
		t.Error("Expected bounded wait not to block")
	}
	if m.Wait() != 250*time.Millisecond {
		t.Errorf("Expected 250ms wait, got %v", m.Wait())
	}
}

func TestModeNames(t *testing.T) {
	if InputCharacter.String() != "Character" {
		t.Errorf("Expected \"Character\", got %q", InputCharacter.String())
	}
	if InputMode(9).String() != "InputMode(?)" {
		t.Errorf("Expected placeholder name, got %q", InputMode(9).String())
	}
	if CursorHighlyVisible.String() != "HighlyVisible" {
		t.Errorf("Expected \"HighlyVisible\", got %q", CursorHighlyVisible.String())
	}
	if InputResize.String() != "Resize" {
		t.Errorf("Expected \"Resize\", got %q", InputResize.String())
	}
}

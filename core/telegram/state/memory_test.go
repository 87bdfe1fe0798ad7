package state

import "testing"

func TestSetTempKeepsUserIdle(t *testing.T) {
	m := NewMemoryManager()

	m.SetTemp(42, "booking_service", int64(1))

	if got := m.GetState(42); got != StateIdle {
		t.Fatalf("GetState after SetTemp = %q, want %q", got, StateIdle)
	}
	if m.InProgress(42) {
		t.Fatalf("InProgress after SetTemp = true, want false")
	}

	v, ok := m.GetTempInt64(42, "booking_service")
	if !ok || v != 1 {
		t.Fatalf("GetTempInt64 = (%d, %v), want (1, true)", v, ok)
	}
}

func TestClearTempKeepsSessionIdle(t *testing.T) {
	m := NewMemoryManager()

	m.SetTemp(7, "booking_service", int64(3))
	m.ClearTemp(7, "booking_service")

	if _, ok := m.GetTemp(7, "booking_service"); ok {
		t.Fatalf("GetTemp after ClearTemp reported a value")
	}
	if m.InProgress(7) {
		t.Fatalf("InProgress after ClearTemp = true, want false")
	}
}

func TestStateTransitions(t *testing.T) {
	m := NewMemoryManager()
	const asking State = "asking_name"

	if m.InProgress(1) {
		t.Fatalf("InProgress for unknown user = true, want false")
	}

	m.SetState(1, asking)
	if !m.InProgress(1) {
		t.Fatalf("InProgress after SetState = false, want true")
	}
	if got := m.GetState(1); got != asking {
		t.Fatalf("GetState = %q, want %q", got, asking)
	}

	m.ClearState(1)
	if m.InProgress(1) {
		t.Fatalf("InProgress after ClearState = true, want false")
	}
}

func TestZeroValueStateCountsAsIdle(t *testing.T) {
	m := NewMemoryManager()

	m.SetState(9, "")
	if m.InProgress(9) {
		t.Fatalf("InProgress with zero-value state = true, want false")
	}
}

package state

import "testing"

func TestClampCursor(t *testing.T) {
	tests := []struct {
		cursor, size, want int
	}{
		{0, 0, 0},
		{5, 3, 2},
		{-1, 3, 0},
		{1, 3, 1},
	}
	for _, tt := range tests {
		if got := ClampCursor(tt.cursor, tt.size); got != tt.want {
			t.Fatalf("ClampCursor(%d, %d) = %d, want %d", tt.cursor, tt.size, got, tt.want)
		}
	}
}

func TestCenteredWindow(t *testing.T) {
	start, end := CenteredWindow(100, 50, 10)
	if start != 45 || end != 55 {
		t.Fatalf("unexpected window: [%d, %d)", start, end)
	}

	start, end = CenteredWindow(5, 2, 10)
	if start != 0 || end != 5 {
		t.Fatalf("short lists are not windowed: [%d, %d)", start, end)
	}

	start, end = CenteredWindow(100, 99, 10)
	if start != 90 || end != 100 {
		t.Fatalf("window must not run past the end: [%d, %d)", start, end)
	}
}

func TestNearEnd(t *testing.T) {
	if NearEnd(0, 0, 5) {
		t.Fatal("empty list is never near its end")
	}
	if NearEnd(10, 20, 5) {
		t.Fatal("cursor 10 of 20 is not near the end")
	}
	if !NearEnd(16, 20, 5) {
		t.Fatal("cursor 16 of 20 is near the end")
	}
}

func TestPageStep(t *testing.T) {
	if got := PageStep(0); got != 10 {
		t.Fatalf("unexpected default step: %d", got)
	}
	if got := PageStep(30); got != 24 {
		t.Fatalf("unexpected step: %d", got)
	}
	if got := PageStep(5); got != 3 {
		t.Fatalf("step floor violated: %d", got)
	}
}

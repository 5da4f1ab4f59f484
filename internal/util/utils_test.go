package util

import "testing"

func TestCalculateAverage(t *testing.T) {
	if got := CalculateAverage(nil); got != 0 {
		t.Errorf("expected 0 for empty map, got %v", got)
	}
	if got := CalculateAverage(map[string]int{"P1": 0, "P2": 4, "P3": 6}); got != 10.0/3.0 {
		t.Errorf("expected %v, got %v", 10.0/3.0, got)
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(5, 0); got != 0 {
		t.Errorf("expected 0 when whole is 0, got %v", got)
	}
	if got := Percentage(8, 10); got != 80 {
		t.Errorf("expected 80, got %v", got)
	}
}

package model

import (
	"math"
	"strings"
	"testing"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "00:00"},
		{0.99, "00:00"},
		{5, "00:05"},
		{59.9, "00:59"},
		{60, "01:00"},
		{65, "01:05"},
		{599, "09:59"},
		{3600, "60:00"},
		{3661, "61:01"},
		{6000.5, "100:00"},
		{-3, "00:00"},
		{math.NaN(), "00:00"},
		{math.Inf(1), "00:00"},
	}

	for _, test := range tests {
		result := FormatTime(test.seconds)
		if result != test.expected {
			t.Errorf("FormatTime(%v) = %s, expected %s", test.seconds, result, test.expected)
		}
	}
}

func TestCaption_Contains(t *testing.T) {
	c := Caption{StartTime: 2, EndTime: 5}

	tests := []struct {
		position float64
		expected bool
	}{
		{1.99, false},
		{2, true},
		{3.5, true},
		{5, true},
		{5.01, false},
	}

	for _, test := range tests {
		if got := c.Contains(test.position); got != test.expected {
			t.Errorf("Contains(%v) = %v, expected %v", test.position, got, test.expected)
		}
	}
}

func TestCaption_Interval(t *testing.T) {
	c := Caption{StartTime: 65, EndTime: 3661}
	if got := c.Interval(); got != "01:05 - 61:01" {
		t.Errorf("Interval() = %s, expected %s", got, "01:05 - 61:01")
	}
}

func TestNewCaptionID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewCaptionID()
		if !strings.HasPrefix(id, CaptionIDPrefix) {
			t.Fatalf("id %s missing prefix %s", id, CaptionIDPrefix)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

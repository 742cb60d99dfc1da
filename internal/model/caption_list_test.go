package model

import "testing"

func sampleList() CaptionList {
	return NewCaptionList(
		Caption{ID: "a", StartTime: 0, EndTime: 10, Text: "first"},
		Caption{ID: "b", StartTime: 5, EndTime: 15, Text: "second"},
		Caption{ID: "c", StartTime: 20, EndTime: 25, Text: "third"},
	)
}

func TestCaptionList_Active(t *testing.T) {
	list := sampleList()

	tests := []struct {
		name     string
		position float64
		expected string
	}{
		{"start bound inclusive", 0, "first"},
		{"overlap prefers first inserted", 7, "first"},
		{"end bound inclusive", 10, "first"},
		{"only second covers", 12, "second"},
		{"gap between captions", 17, ""},
		{"third caption", 25, "third"},
		{"past every caption", 30, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := list.ActiveText(test.position); got != test.expected {
				t.Errorf("ActiveText(%v) = %q, expected %q", test.position, got, test.expected)
			}
		})
	}
}

func TestCaptionList_ActiveEmptyList(t *testing.T) {
	var list CaptionList
	if _, ok := list.Active(3); ok {
		t.Error("empty list should have no active caption")
	}
	if got := list.ActiveText(3); got != "" {
		t.Errorf("expected empty text, got %q", got)
	}
}

func TestCaptionList_AppendPreservesOrder(t *testing.T) {
	list := sampleList()
	next := list.Append(Caption{ID: "d", StartTime: 1, EndTime: 2, Text: "fourth"})

	if list.Len() != 3 {
		t.Errorf("original list should be untouched, has %d items", list.Len())
	}
	if next.Len() != 4 {
		t.Fatalf("expected 4 items, got %d", next.Len())
	}

	expected := []string{"a", "b", "c", "d"}
	for i, c := range next.Items() {
		if c.ID != expected[i] {
			t.Errorf("item %d: expected id %s, got %s", i, expected[i], c.ID)
		}
	}
}

func TestCaptionList_Remove(t *testing.T) {
	list := sampleList()

	next, removed := list.Remove("b")
	if !removed {
		t.Fatal("expected caption b to be removed")
	}
	if next.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", next.Len())
	}
	if first, _ := next.At(0); first.ID != "a" {
		t.Errorf("expected a first, got %s", first.ID)
	}
	if second, _ := next.At(1); second.ID != "c" {
		t.Errorf("expected c second, got %s", second.ID)
	}
	if list.Len() != 3 {
		t.Errorf("original list should be untouched, has %d items", list.Len())
	}
}

func TestCaptionList_RemoveMissingIsNoop(t *testing.T) {
	list := sampleList()

	next, removed := list.Remove("missing")
	if removed {
		t.Error("removing unknown id should report false")
	}
	if next.Len() != list.Len() {
		t.Errorf("expected %d items, got %d", list.Len(), next.Len())
	}
}

func TestCaptionList_ItemsIsCopy(t *testing.T) {
	list := sampleList()
	items := list.Items()
	items[0].Text = "mutated"

	if c, _ := list.At(0); c.Text != "first" {
		t.Errorf("Items() must return a copy, list now holds %q", c.Text)
	}
}

func TestCaptionList_At(t *testing.T) {
	list := sampleList()
	if _, ok := list.At(-1); ok {
		t.Error("At(-1) should be out of range")
	}
	if _, ok := list.At(3); ok {
		t.Error("At(3) should be out of range")
	}
	if c, ok := list.At(2); !ok || c.ID != "c" {
		t.Errorf("At(2) = %v, %v", c, ok)
	}
}

package source

import "testing"

func TestSpanBasics(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 7}
	if s.Empty() {
		t.Error("Expected non-empty span")
	}
	if s.Len() != 4 {
		t.Errorf("Expected len 4, got %d", s.Len())
	}
	if s.String() != "0:3-7" {
		t.Errorf("Expected \"0:3-7\", got %q", s.String())
	}

	empty := Span{File: 0, Start: 5, End: 5}
	if !empty.Empty() {
		t.Error("Expected empty span")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 3, End: 7}
	b := Span{File: 0, Start: 1, End: 5}
	c := a.Cover(b)
	if c.Start != 1 || c.End != 7 {
		t.Errorf("Expected cover 1-7, got %d-%d", c.Start, c.End)
	}

	// Другой файл — span не меняется
	other := Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Expected cover across files to be a no-op, got %+v", got)
	}
}

func TestSpanBefore(t *testing.T) {
	a := Span{File: 0, Start: 0, End: 3}
	b := Span{File: 0, Start: 3, End: 5}
	if !a.Before(b) {
		t.Error("Expected a.Before(b)")
	}
	if b.Before(a) {
		t.Error("Did not expect b.Before(a)")
	}
	if a.Before(Span{File: 1, Start: 10, End: 12}) {
		t.Error("Spans in different files are not ordered")
	}
}

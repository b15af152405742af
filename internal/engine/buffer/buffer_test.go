package buffer

import (
	"errors"
	"strings"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}

	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}

	n, ok := b.LineLength(0)
	if !ok || n != 0 {
		t.Errorf("expected empty line 0, got %d, %v", n, ok)
	}
}

func TestNewBufferFromStringMultiline(t *testing.T) {
	b := NewBufferFromString("line1\nline2\nline3")

	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}

	for i, want := range []string{"line1", "line2", "line3"} {
		got, ok := b.Line(i)
		if !ok || got != want {
			t.Errorf("line %d: expected %q, got %q", i, want, got)
		}
	}

	if b.Modified() {
		t.Error("buffer created from string should not be modified")
	}
}

func TestBufferPath(t *testing.T) {
	b := NewBufferFromString("x", WithPath("/tmp/a.txt"))
	if b.Path() != "/tmp/a.txt" {
		t.Errorf("expected path /tmp/a.txt, got %q", b.Path())
	}
}

func TestBufferIDsAreDistinct(t *testing.T) {
	a, b := NewBuffer(), NewBuffer()
	if a.ID() == b.ID() {
		t.Error("two buffers should not share an ID")
	}
}

func TestLineCountMatchesNewlines(t *testing.T) {
	tests := []string{"", "a", "\n", "a\n", "\n\n", "ab\ncd\n\nef"}

	for _, text := range tests {
		b := NewBufferFromString(text)
		want := strings.Count(text, "\n") + 1
		if b.LineCount() != want {
			t.Errorf("%q: expected %d lines, got %d", text, want, b.LineCount())
		}
	}
}

func TestLineLength(t *testing.T) {
	b := NewBufferFromString("abc\n\nhello")

	tests := []struct {
		line   int
		want   int
		wantOK bool
	}{
		{0, 3, true},
		{1, 0, true},
		{2, 5, true},
		{3, 0, false},
		{-1, 0, false},
	}

	for _, tt := range tests {
		got, ok := b.LineLength(tt.line)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("LineLength(%d) = %d, %v; want %d, %v", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLineLengthCountsRunes(t *testing.T) {
	b := NewBufferFromString("héllo\n日本")

	if n, _ := b.LineLength(0); n != 5 {
		t.Errorf("expected 5 runes, got %d", n)
	}
	if n, _ := b.LineLength(1); n != 2 {
		t.Errorf("expected 2 runes, got %d", n)
	}
}

func TestBufferInsert(t *testing.T) {
	b := NewBufferFromString("Hello World")

	if err := b.Insert(5, ','); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if b.Text() != "Hello, World" {
		t.Errorf("expected 'Hello, World', got %q", b.Text())
	}

	if !b.Modified() {
		t.Error("buffer should be modified after insert")
	}
}

func TestBufferInsertAtEnd(t *testing.T) {
	b := NewBufferFromString("ab")

	if err := b.Insert(2, 'c'); err != nil {
		t.Fatalf("insert at end failed: %v", err)
	}
	if b.Text() != "abc" {
		t.Errorf("expected 'abc', got %q", b.Text())
	}
}

func TestBufferInsertOutOfBounds(t *testing.T) {
	b := NewBufferFromString("ab")

	err := b.Insert(3, 'x')
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if b.Text() != "ab" {
		t.Errorf("buffer should be unchanged, got %q", b.Text())
	}

	if err := b.Insert(-1, 'x'); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds for negative index, got %v", err)
	}
}

func TestBufferInsertNewlineSplitsLine(t *testing.T) {
	b := NewBufferFromString("abcd\nef")

	if err := b.Insert(2, '\n'); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	want := []string{"ab", "cd", "ef"}
	got := b.Lines()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if start, _ := b.LineStart(2); start != 6 {
		t.Errorf("expected line 2 to start at 6, got %d", start)
	}
}

func TestBufferRemove(t *testing.T) {
	b := NewBufferFromString("abc")

	if err := b.Remove(1); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if b.Text() != "ac" {
		t.Errorf("expected 'ac', got %q", b.Text())
	}
}

func TestBufferRemoveOutOfBounds(t *testing.T) {
	b := NewBufferFromString("ab")

	if err := b.Remove(2); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds at len, got %v", err)
	}

	empty := NewBuffer()
	if err := empty.Remove(0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds on empty buffer, got %v", err)
	}
}

func TestBufferRemoveNewlineMergesLines(t *testing.T) {
	b := NewBufferFromString("ab\ncd\nef")

	if err := b.Remove(2); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	if b.Text() != "abcd\nef" {
		t.Errorf("expected 'abcd\\nef', got %q", b.Text())
	}
	if b.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", b.LineCount())
	}
	if start, _ := b.LineStart(1); start != 5 {
		t.Errorf("expected line 1 to start at 5, got %d", start)
	}
}

func TestLineIndexStaysConsistent(t *testing.T) {
	b := NewBuffer()
	text := "one\ntwo\n\nthree"

	for i, r := range []rune(text) {
		if err := b.Insert(i, r); err != nil {
			t.Fatalf("insert %d failed: %v", i, err)
		}
		assertIndexMatchesRebuild(t, b)
	}

	for b.Len() > 0 {
		if err := b.Remove(b.Len() / 2); err != nil {
			t.Fatalf("remove failed: %v", err)
		}
		assertIndexMatchesRebuild(t, b)
	}
}

func assertIndexMatchesRebuild(t *testing.T, b *Buffer) {
	t.Helper()

	fresh := NewBufferFromString(b.Text())
	if len(fresh.lineStarts) != len(b.lineStarts) {
		t.Fatalf("%q: line starts %v, rebuilt %v", b.Text(), b.lineStarts, fresh.lineStarts)
	}
	for i := range fresh.lineStarts {
		if fresh.lineStarts[i] != b.lineStarts[i] {
			t.Fatalf("%q: line starts %v, rebuilt %v", b.Text(), b.lineStarts, fresh.lineStarts)
		}
	}
}

func TestOffsetPointConversion(t *testing.T) {
	b := NewBufferFromString("ab\ncde\n")

	tests := []struct {
		offset int
		point  Point
	}{
		{0, Point{0, 0}},
		{2, Point{0, 2}},
		{3, Point{1, 0}},
		{6, Point{1, 3}},
		{7, Point{2, 0}},
	}

	for _, tt := range tests {
		if got := b.OffsetToPoint(tt.offset); got != tt.point {
			t.Errorf("OffsetToPoint(%d) = %v, want %v", tt.offset, got, tt.point)
		}
		got, err := b.PointToOffset(tt.point)
		if err != nil {
			t.Errorf("PointToOffset(%v) error: %v", tt.point, err)
		}
		if got != tt.offset {
			t.Errorf("PointToOffset(%v) = %d, want %d", tt.point, got, tt.offset)
		}
	}
}

func TestPointToOffsetClampsColumn(t *testing.T) {
	b := NewBufferFromString("ab\ncdef")

	got, err := b.PointToOffset(Point{Line: 0, Column: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Errorf("expected clamped offset 2, got %d", got)
	}

	if _, err := b.PointToOffset(Point{Line: 5}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds for missing line, got %v", err)
	}
}

func TestRuneAt(t *testing.T) {
	b := NewBufferFromString("a\nb")

	if r, ok := b.RuneAt(1); !ok || r != '\n' {
		t.Errorf("expected newline at 1, got %q, %v", r, ok)
	}
	if _, ok := b.RuneAt(3); ok {
		t.Error("expected no rune at 3")
	}
}

func TestMarkClean(t *testing.T) {
	b := NewBuffer()
	_ = b.Insert(0, 'x')
	b.MarkClean()
	if b.Modified() {
		t.Error("buffer should be clean after MarkClean")
	}
}

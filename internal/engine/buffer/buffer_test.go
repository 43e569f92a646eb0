package buffer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/linkstorm/internal/engine/buffer"
)

func TestNewBuffer(t *testing.T) {
	buf := buffer.NewBuffer()

	if !buf.IsEmpty() {
		t.Error("expected new buffer to be empty")
	}
	if buf.Len() != 0 {
		t.Errorf("expected length 0, got %d", buf.Len())
	}
	if buf.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", buf.LineCount())
	}
}

func TestNewBufferFromString(t *testing.T) {
	buf := buffer.NewBufferFromString("hello\nworld")

	if buf.Text() != "hello\nworld" {
		t.Errorf("unexpected text: %q", buf.Text())
	}
	if buf.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", buf.LineCount())
	}
	if buf.LineText(0) != "hello" {
		t.Errorf("expected line 0 %q, got %q", "hello", buf.LineText(0))
	}
	if buf.LineText(1) != "world" {
		t.Errorf("expected line 1 %q, got %q", "world", buf.LineText(1))
	}
}

func TestNewBufferFromReader(t *testing.T) {
	buf, err := buffer.NewBufferFromReader(strings.NewReader("a\r\nb\rc"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// CRLF and bare CR normalize to LF.
	if buf.Text() != "a\nb\nc" {
		t.Errorf("expected normalized text, got %q", buf.Text())
	}
	if buf.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", buf.LineCount())
	}
}

func TestInsert(t *testing.T) {
	buf := buffer.NewBufferFromString("hello world")

	end, err := buf.Insert(5, ",")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != 6 {
		t.Errorf("expected end offset 6, got %d", end)
	}
	if buf.Text() != "hello, world" {
		t.Errorf("unexpected text: %q", buf.Text())
	}
}

func TestInsertOutOfRange(t *testing.T) {
	buf := buffer.NewBufferFromString("abc")

	if _, err := buf.Insert(10, "x"); !errors.Is(err, buffer.ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
	if _, err := buf.Insert(-1, "x"); !errors.Is(err, buffer.ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	buf := buffer.NewBufferFromString("hello, world")

	if err := buf.Delete(5, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Text() != "helloworld" {
		t.Errorf("unexpected text: %q", buf.Text())
	}
}

func TestDeleteInvalidRange(t *testing.T) {
	buf := buffer.NewBufferFromString("abc")

	if err := buf.Delete(2, 1); !errors.Is(err, buffer.ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid, got %v", err)
	}
	if err := buf.Delete(0, 10); !errors.Is(err, buffer.ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid, got %v", err)
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		start    int64
		end      int64
		text     string
		expected string
	}{
		{"middle", "hello world", 6, 11, "there", "hello there"},
		{"start", "hello world", 0, 5, "goodbye", "goodbye world"},
		{"empty replacement", "hello world", 5, 11, "", "hello"},
		{"grow", "ab", 1, 2, "xyz", "axyz"},
		{"entire buffer", "old", 0, 3, "new text", "new text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewBufferFromString(tt.initial)

			end, err := buf.Replace(tt.start, tt.end, tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if end != tt.start+int64(len(tt.text)) {
				t.Errorf("expected end %d, got %d", tt.start+int64(len(tt.text)), end)
			}
			if buf.Text() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, buf.Text())
			}
		})
	}
}

func TestReplaceExactExtent(t *testing.T) {
	// Replacement must not disturb surrounding text.
	buf := buffer.NewBufferFromString("before [[a][b]] after")

	if _, err := buf.Replace(7, 15, "LINK"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Text() != "before LINK after" {
		t.Errorf("unexpected text: %q", buf.Text())
	}
}

func TestApplyEdit(t *testing.T) {
	buf := buffer.NewBufferFromString("hello world")

	result, err := buf.ApplyEdit(buffer.NewEdit(buffer.NewRange(0, 5), "hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OldText != "hello" {
		t.Errorf("expected old text %q, got %q", "hello", result.OldText)
	}
	if result.NewRange.End != 2 {
		t.Errorf("expected new end 2, got %d", result.NewRange.End)
	}
	if result.Delta != -3 {
		t.Errorf("expected delta -3, got %d", result.Delta)
	}
	if buf.Text() != "hi world" {
		t.Errorf("unexpected text: %q", buf.Text())
	}
}

func TestRevisionChangesOnEdit(t *testing.T) {
	buf := buffer.NewBufferFromString("abc")
	rev := buf.RevisionID()

	if _, err := buf.Insert(0, "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.RevisionID() == rev {
		t.Error("expected revision to change after edit")
	}
}

func TestOffsetToPoint(t *testing.T) {
	buf := buffer.NewBufferFromString("ab\ncde\nf")

	tests := []struct {
		offset int64
		line   uint32
		col    uint32
	}{
		{0, 0, 0},
		{1, 0, 1},
		{3, 1, 0},
		{5, 1, 2},
		{7, 2, 0},
		{8, 2, 1},
	}

	for _, tt := range tests {
		p := buf.OffsetToPoint(tt.offset)
		if p.Line != tt.line || p.Column != tt.col {
			t.Errorf("offset %d: expected (%d:%d), got %s", tt.offset, tt.line, tt.col, p)
		}
	}
}

func TestPointToOffset(t *testing.T) {
	buf := buffer.NewBufferFromString("ab\ncde\nf")

	tests := []struct {
		point  buffer.Point
		offset int64
	}{
		{buffer.Point{Line: 0, Column: 0}, 0},
		{buffer.Point{Line: 1, Column: 2}, 5},
		{buffer.Point{Line: 2, Column: 0}, 7},
		// Column past line end clamps to line end.
		{buffer.Point{Line: 0, Column: 99}, 2},
		// Line past buffer clamps to buffer end.
		{buffer.Point{Line: 99, Column: 0}, 8},
	}

	for _, tt := range tests {
		if got := buf.PointToOffset(tt.point); got != tt.offset {
			t.Errorf("point %s: expected offset %d, got %d", tt.point, tt.offset, got)
		}
	}
}

func TestTextRangeClamps(t *testing.T) {
	buf := buffer.NewBufferFromString("hello")

	if got := buf.TextRange(-5, 3); got != "hel" {
		t.Errorf("expected %q, got %q", "hel", got)
	}
	if got := buf.TextRange(3, 100); got != "lo" {
		t.Errorf("expected %q, got %q", "lo", got)
	}
	if got := buf.TextRange(4, 2); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestLineOffsets(t *testing.T) {
	buf := buffer.NewBufferFromString("ab\ncde\n")

	if got := buf.LineStartOffset(1); got != 3 {
		t.Errorf("expected line 1 start 3, got %d", got)
	}
	if got := buf.LineEndOffset(1); got != 6 {
		t.Errorf("expected line 1 end 6, got %d", got)
	}
	// Trailing newline produces a final empty line.
	if buf.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", buf.LineCount())
	}
}

func TestCRLFBuffer(t *testing.T) {
	buf := buffer.NewBufferFromString("a\nb", buffer.WithCRLF())

	if buf.Text() != "a\r\nb" {
		t.Errorf("expected CRLF text, got %q", buf.Text())
	}
	if buf.LineText(0) != "a" {
		t.Errorf("expected line 0 %q, got %q", "a", buf.LineText(0))
	}
}

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		text     string
		expected buffer.LineEnding
	}{
		{"a\nb\nc", buffer.LineEndingLF},
		{"a\r\nb\r\nc", buffer.LineEndingCRLF},
		{"no endings", buffer.LineEndingLF},
	}

	for _, tt := range tests {
		if got := buffer.DetectLineEnding(tt.text); got != tt.expected {
			t.Errorf("DetectLineEnding(%q) = %v, expected %v", tt.text, got, tt.expected)
		}
	}
}

package rewrite_test

import (
	"errors"
	"testing"

	"github.com/dshills/linkstorm/internal/engine/buffer"
	"github.com/dshills/linkstorm/internal/engine/cursor"
	"github.com/dshills/linkstorm/internal/link/format"
	"github.com/dshills/linkstorm/internal/link/org"
	"github.com/dshills/linkstorm/internal/link/rewrite"
)

// staticDocType reports a fixed document type.
type staticDocType string

func (d staticDocType) DocType() string { return string(d) }

// captureAt simulates the external capture routine: it inserts a raw
// bracketed link at the cursor and leaves the cursor after it.
func captureAt(buf *buffer.Buffer, cur *cursor.Cursor, url, desc string) rewrite.Inserter {
	return rewrite.InserterFunc(func() error {
		end, err := buf.Insert(cur.Offset(), org.Format(url, desc))
		if err != nil {
			return err
		}
		cur.SetOffset(end)
		return nil
	})
}

func newRewriter(buf *buffer.Buffer, cur *cursor.Cursor, docType string, reg *format.Registry, ins rewrite.Inserter) *rewrite.Rewriter {
	return rewrite.New(rewrite.Config{
		Engine:     buf,
		Cursor:     cur,
		Document:   staticDocType(docType),
		Formatters: reg,
		Inserter:   ins,
	})
}

func TestRewritePlainText(t *testing.T) {
	buf := buffer.NewBufferFromString("Read this:  for details.")
	cur := cursor.NewAt(11) // between the two spaces
	ins := captureAt(buf, cur, "https://example.com", "Example Site")

	rw := newRewriter(buf, cur, format.DocTypeText, format.DefaultRegistry(), ins)
	result := rw.RewriteLastInserted()

	if result.Outcome != rewrite.OutcomeRewritten {
		t.Fatalf("expected rewritten, got %s", result.Outcome)
	}
	expected := "Read this: Example Site (see https://example.com) for details."
	if buf.Text() != expected {
		t.Errorf("expected %q, got %q", expected, buf.Text())
	}
	if result.DocType != format.DocTypeText {
		t.Errorf("expected doctype %q, got %q", format.DocTypeText, result.DocType)
	}
	if result.Replacement != "Example Site (see https://example.com)" {
		t.Errorf("unexpected replacement %q", result.Replacement)
	}
}

func TestRewriteNoFormatterLeavesRawLink(t *testing.T) {
	buf := buffer.NewBufferFromString("note: ")
	cur := cursor.NewAt(6)
	ins := captureAt(buf, cur, "https://x.com", "X")

	rw := newRewriter(buf, cur, "fortran", format.DefaultRegistry(), ins)
	result := rw.RewriteLastInserted()

	if result.Outcome != rewrite.OutcomeNoFormatter {
		t.Fatalf("expected no-formatter, got %s", result.Outcome)
	}
	// The raw native link stands exactly as the capture routine left it.
	if buf.Text() != "note: [[https://x.com][X]]" {
		t.Errorf("expected raw link to stand, got %q", buf.Text())
	}
}

func TestRewriteCancelledCapture(t *testing.T) {
	buf := buffer.NewBufferFromString("untouched")
	cur := cursor.NewAt(9)
	rev := buf.RevisionID()

	cancelled := rewrite.InserterFunc(func() error {
		return errors.New("capture cancelled")
	})

	rw := newRewriter(buf, cur, format.DocTypeText, format.DefaultRegistry(), cancelled)
	result := rw.RewriteLastInserted()

	if result.Outcome != rewrite.OutcomeNoLink {
		t.Fatalf("expected no-link, got %s", result.Outcome)
	}
	if buf.Text() != "untouched" {
		t.Errorf("expected buffer unchanged, got %q", buf.Text())
	}
	if buf.RevisionID() != rev {
		t.Error("expected no buffer mutation")
	}
}

func TestRewriteNoLinkInBuffer(t *testing.T) {
	buf := buffer.NewBufferFromString("plain text, no links here")
	cur := cursor.NewAt(10)

	rw := newRewriter(buf, cur, format.DocTypeText, format.DefaultRegistry(), nil)
	result := rw.RewriteLastInserted()

	if result.Outcome != rewrite.OutcomeNoLink {
		t.Fatalf("expected no-link, got %s", result.Outcome)
	}
	if buf.Text() != "plain text, no links here" {
		t.Errorf("expected buffer unchanged, got %q", buf.Text())
	}
}

func TestRewriteHTMLDocType(t *testing.T) {
	buf := buffer.NewBufferFromString("")
	cur := cursor.New()
	ins := captureAt(buf, cur, "https://example.com/a:b", "Example")

	rw := newRewriter(buf, cur, format.DocTypeHTML, format.DefaultRegistry(), ins)
	result := rw.RewriteLastInserted()

	if result.Outcome != rewrite.OutcomeRewritten {
		t.Fatalf("expected rewritten, got %s", result.Outcome)
	}
	expected := `<a target="_blank" href="https://example.com/a:b">Example</a>`
	if buf.Text() != expected {
		t.Errorf("expected %q, got %q", expected, buf.Text())
	}
}

func TestRewriteDescriptionDefaultsToURL(t *testing.T) {
	buf := buffer.NewBufferFromString("")
	cur := cursor.New()
	ins := captureAt(buf, cur, "https://x.com", "")

	rw := newRewriter(buf, cur, format.DocTypeText, format.DefaultRegistry(), ins)
	result := rw.RewriteLastInserted()

	if result.Outcome != rewrite.OutcomeRewritten {
		t.Fatalf("expected rewritten, got %s", result.Outcome)
	}
	if buf.Text() != "https://x.com (see https://x.com)" {
		t.Errorf("unexpected text: %q", buf.Text())
	}
}

func TestRewriteCursorPastBufferEnd(t *testing.T) {
	buf := buffer.NewBufferFromString("see [[https://x.com][X]]")
	cur := cursor.NewAt(1000)

	rw := newRewriter(buf, cur, format.DocTypeText, format.DefaultRegistry(), nil)
	result := rw.RewriteLastInserted()

	if result.Outcome != rewrite.OutcomeRewritten {
		t.Fatalf("expected rewritten, got %s", result.Outcome)
	}
	if buf.Text() != "see X (see https://x.com)" {
		t.Errorf("unexpected text: %q", buf.Text())
	}
}

func TestRewriteIndependentRuns(t *testing.T) {
	// Two invocations in succession each operate on their own span.
	buf := buffer.NewBufferFromString("")
	cur := cursor.New()
	reg := format.DefaultRegistry()

	first := newRewriter(buf, cur, format.DocTypeText, reg,
		captureAt(buf, cur, "https://a.com", "A"))
	if result := first.RewriteLastInserted(); result.Outcome != rewrite.OutcomeRewritten {
		t.Fatalf("first run: expected rewritten, got %s", result.Outcome)
	}

	cur.SetOffset(buf.Len())
	second := newRewriter(buf, cur, format.DocTypeText, reg,
		captureAt(buf, cur, "https://b.com", "B"))
	if result := second.RewriteLastInserted(); result.Outcome != rewrite.OutcomeRewritten {
		t.Fatalf("second run: expected rewritten, got %s", result.Outcome)
	}

	expected := "A (see https://a.com)B (see https://b.com)"
	if buf.Text() != expected {
		t.Errorf("expected %q, got %q", expected, buf.Text())
	}
}

func TestRewriteMissingCollaborators(t *testing.T) {
	rw := rewrite.New(rewrite.Config{})
	if result := rw.RewriteLastInserted(); result.Outcome != rewrite.OutcomeNoLink {
		t.Errorf("expected no-link for empty config, got %s", result.Outcome)
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  rewrite.Outcome
		expected string
	}{
		{rewrite.OutcomeRewritten, "rewritten"},
		{rewrite.OutcomeNoLink, "no-link"},
		{rewrite.OutcomeNoFormatter, "no-formatter"},
		{rewrite.OutcomeMalformed, "malformed"},
		{rewrite.Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.expected {
			t.Errorf("Outcome(%d).String() = %q, expected %q", tt.outcome, got, tt.expected)
		}
	}
}

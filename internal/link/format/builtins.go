package format

import (
	"fmt"
	"strings"

	"github.com/dshills/linkstorm/internal/link/org"
)

// Built-in document type names.
const (
	DocTypeHTML     = "html"
	DocTypeText     = "text"
	DocTypeGo       = "go"
	DocTypeOrg      = "org"
	DocTypeMarkdown = "markdown"
)

// builtins returns the built-in formatters.
func builtins() []Formatter {
	return []Formatter{
		NewFunc(DocTypeHTML, FormatHTML),
		NewFunc(DocTypeText, FormatText),
		NewFunc(DocTypeGo, FormatGoComment),
		NewFunc(DocTypeOrg, org.Format),
		NewFunc(DocTypeMarkdown, FormatMarkdown),
	}
}

// Builtin returns the built-in formatter with the given name.
func Builtin(name string) (Formatter, bool) {
	for _, f := range builtins() {
		if f.DocType() == name {
			return f, true
		}
	}
	return nil, false
}

// BuiltinNames returns the names of all built-in formatters.
func BuiltinNames() []string {
	fs := builtins()
	names := make([]string, 0, len(fs))
	for _, f := range fs {
		names = append(names, f.DocType())
	}
	return names
}

// FormatHTML renders an anchor element that opens in a new viewing context.
// The URL splits into scheme and remainder at the first colon only, so URLs
// with further colons keep them intact.
func FormatHTML(url, description string) string {
	scheme, rest, ok := strings.Cut(url, ":")
	if !ok {
		return fmt.Sprintf("<a target=\"_blank\" href=\"%s\">%s</a>", url, description)
	}
	return fmt.Sprintf("<a target=\"_blank\" href=\"%s:%s\">%s</a>", scheme, rest, description)
}

// FormatText renders a plain-text reference.
func FormatText(url, description string) string {
	return fmt.Sprintf("%s (see %s)", description, url)
}

// FormatGoComment renders the doc-comment convention where URLs are
// backtick-quoted.
func FormatGoComment(url, description string) string {
	return fmt.Sprintf("%s (see URL `%s')", description, url)
}

// FormatMarkdown renders a Markdown inline link.
func FormatMarkdown(url, description string) string {
	return fmt.Sprintf("[%s](%s)", description, url)
}

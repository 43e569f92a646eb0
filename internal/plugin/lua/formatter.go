package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/linkstorm/internal/link/org"
)

// Formatter wraps a plugin-registered Lua function as a link formatter.
// When the Lua call fails or returns a non-string, the formatter degrades
// to the canonical native rendering so the rewrite pipeline never breaks
// the buffer.
type Formatter struct {
	host    *Host
	docType string
	fn      *lua.LFunction
}

// Format implements format.Formatter.Format.
func (f *Formatter) Format(url, description string) string {
	out, err := f.host.call(f.fn, url, description)
	if err != nil {
		return org.Format(url, description)
	}
	return out
}

// DocType implements format.Formatter.DocType.
func (f *Formatter) DocType() string {
	return f.docType
}

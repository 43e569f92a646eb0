// Package org implements the bracketed link syntax emitted by the host
// link-capture feature: [[url][description]] with an optional description.
package org

import (
	"errors"
	"regexp"

	"github.com/dshills/linkstorm/internal/engine/buffer"
)

// ErrNoURL indicates a raw link with no extractable URL.
var ErrNoURL = errors.New("link has no URL")

// linkPattern matches a bracketed link. Group 1 is the URL, group 2 the
// optional description. Brackets cannot appear inside either part.
var linkPattern = regexp.MustCompile(`\[\[([^][]+)\](?:\[([^][]+)\])?\]`)

// Link is a decomposed bracketed link.
type Link struct {
	URL         string
	Description string
}

// Format renders url and description in canonical bracketed syntax.
// A description that is empty or identical to the URL collapses to the
// short [[url]] form.
func Format(url, description string) string {
	if description == "" || description == url {
		return "[[" + url + "]]"
	}
	return "[[" + url + "][" + description + "]]"
}

// Parse decomposes the raw text of a bracketed link.
// A missing description defaults to the URL. Returns ErrNoURL when the text
// is not a well-formed link.
func Parse(raw string) (Link, error) {
	m := linkPattern.FindStringSubmatch(raw)
	if m == nil || len(m[0]) != len(raw) || m[1] == "" {
		return Link{}, ErrNoURL
	}

	link := Link{URL: m[1], Description: m[2]}
	if link.Description == "" {
		link.Description = link.URL
	}
	return link, nil
}

// Span is a located bracketed link occupying a contiguous range in a
// document.
type Span struct {
	Range buffer.Range
	Raw   string
}

// FindAround locates the bracketed link nearest to pos. A match containing
// pos wins; otherwise the closest match ending at or before pos is used.
// Matches strictly after pos are ignored, since capture leaves the cursor
// after the inserted link. The second return value reports whether a span
// was found.
func FindAround(text string, pos buffer.ByteOffset) (Span, bool) {
	matches := linkPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return Span{}, false
	}

	var best []int
	for _, m := range matches {
		start, end := buffer.ByteOffset(m[0]), buffer.ByteOffset(m[1])
		if start <= pos && pos <= end {
			best = m
			break
		}
		if end <= pos && (best == nil || m[1] > best[1]) {
			best = m
		}
	}
	if best == nil {
		return Span{}, false
	}

	return Span{
		Range: buffer.NewRange(buffer.ByteOffset(best[0]), buffer.ByteOffset(best[1])),
		Raw:   text[best[0]:best[1]],
	}, true
}

/*
Package htmlstyle derives attribute runs from inline HTML.

It parses a paragraph-like HTML fragment and produces the plain text
together with an attribute store carrying one range overwrite per inline
span element (<b>, <i>, <u>, …). Nested elements overwrite the attributes
of their ancestors on the overlapped range, which is exactly the store's
range-overwrite semantics.

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package htmlstyle

import (
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/attribs"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer writes to trace with key 'attribs'
func tracer() tracing.Trace {
	return tracing.Select("attribs")
}

// span is a pending range overwrite collected during the HTML walk.
type span struct {
	start, end int64
	depth      int
	bundle     attribs.Attributes
}

// TextFromHTML creates an attributed text from the textual content of an
// HTML fragment. The fragment should reflect the content of a
// paragraph-like element; block structure is not interpreted. It resembles
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, with the styling of inline span elements preserved as
// attribute runs.
func TextFromHTML(input io.Reader) (string, attribs.Store, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return "", attribs.Store{}, err
	}
	var text strings.Builder
	var spans []span
	for _, n := range nodes {
		collectText(n, 0, &text, &spans)
	}
	// Ancestors first: children must overwrite the overlap.
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].depth < spans[j].depth
	})
	var store attribs.Store
	for _, sp := range spans {
		if sp.start >= sp.end {
			continue // empty element
		}
		store = store.Overwrite(sp.start, sp.end, sp.bundle)
	}
	return text.String(), store, nil
}

func collectText(n *html.Node, depth int, text *strings.Builder, spans *[]span) {
	pending := -1 // index into spans; recursion below may grow the slice
	if n.Type == html.ElementNode {
		tracer().Debugf("inline html: collect text of <%s>", n.Data)
		if bundle, ok := bundleForElement(n.Data); ok {
			*spans = append(*spans, span{
				start:  int64(text.Len()),
				depth:  depth,
				bundle: bundle,
			})
			pending = len(*spans) - 1
		}
	} else if n.Type == html.TextNode {
		text.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, depth+1, text, spans)
	}
	if pending >= 0 {
		(*spans)[pending].end = int64(text.Len())
	}
}

// bundleForElement maps an inline element name to the attributes it sets.
func bundleForElement(name string) (attribs.Attributes, bool) {
	switch name {
	case "b", "strong":
		w := attribs.WeightBold
		return attribs.Attributes{FontWeight: &w}, true
	case "i", "em":
		s := attribs.StyleItalic
		return attribs.Attributes{FontStyle: &s}, true
	case "u":
		d := attribs.Underline
		return attribs.Attributes{Decoration: &d}, true
	case "s", "del":
		d := attribs.LineThrough
		return attribs.Attributes{Decoration: &d}, true
	case "mark":
		bg := attribs.Left[attribs.Color, attribs.Paint](attribs.RGB(0xff, 0xe0, 0x40))
		return attribs.Attributes{Background: &bg}, true
	case "small":
		size := 10.0
		return attribs.Attributes{FontSize: &size}, true
	}
	return attribs.Attributes{}, false
}

package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/attribs"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

func TestOutputPlainText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "attribs")
	defer teardown()
	grapheme.SetupGraphemeClasses()
	//
	color.NoColor = true
	fw := NewConsoleFixedWidthFormat(nil)
	config := &Config{LineWidth: 30, Context: uax11.LatinContext}
	var buf bytes.Buffer
	text := "The quick brown fox jumps over the lazy dog!"
	if err := fw.Output(text, attribs.Store{}, &buf, config); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	joined := strings.ReplaceAll(out, "\n", " ")
	joined = strings.Join(strings.Fields(joined), " ")
	if joined != text {
		t.Fatalf("formatted text mangled: %q", out)
	}
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if len(line) > 30 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}

func TestOutputStyledText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "attribs")
	defer teardown()
	grapheme.SetupGraphemeClasses()
	//
	color.NoColor = true // effects disabled, content must survive unchanged
	w := attribs.WeightBold
	var store attribs.Store
	store = store.Overwrite(4, 9, attribs.Attributes{FontWeight: &w})
	fw := NewConsoleFixedWidthFormat(nil)
	config := &Config{LineWidth: 80, Context: uax11.LatinContext}
	var buf bytes.Buffer
	if err := fw.Output("The quick fox", store, &buf, config); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimRight(buf.String(), "\n"); got != "The quick fox" {
		t.Fatalf("styled output mangled: %q", got)
	}
}

func TestOutputRejectsNilConfig(t *testing.T) {
	fw := NewConsoleFixedWidthFormat(nil)
	var buf bytes.Buffer
	if err := fw.Output("x", attribs.Store{}, &buf, nil); err == nil {
		t.Fatalf("expected an error for a nil config")
	}
}

func TestDefaultColors(t *testing.T) {
	w, s, d := attribs.WeightBold, attribs.StyleItalic, attribs.Underline
	fg := attribs.Left[attribs.Color, attribs.Paint](attribs.RGB(0xff, 0, 0))
	cs := attribs.ComposedStyle{
		Foreground: &fg,
		FontWeight: &w,
		FontStyle:  &s,
		Decoration: &d,
	}
	if c := DefaultColors(cs); c == nil {
		t.Fatalf("expected a color for a styled run")
	}
	if c := DefaultColors(attribs.ComposedStyle{}); c == nil {
		t.Fatalf("expected a (neutral) color for an unstyled run")
	}
}

func TestNearestANSI(t *testing.T) {
	cases := []struct {
		col  attribs.Color
		want color.Attribute
	}{
		{attribs.RGB(0, 0, 0), color.FgBlack},
		{attribs.RGB(0xff, 0, 0), color.FgRed},
		{attribs.RGB(0, 0xff, 0), color.FgGreen},
		{attribs.RGB(0, 0, 0xff), color.FgBlue},
		{attribs.RGB(0xff, 0xff, 0), color.FgYellow},
		{attribs.RGB(0xff, 0xff, 0xff), color.FgWhite},
	}
	for _, c := range cases {
		if got := nearestANSI(c.col); got != c.want {
			t.Fatalf("nearestANSI(%v) = %d, want %d", c.col, got, c.want)
		}
	}
}

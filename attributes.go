package attribs

import "fmt"

// --- Attribute values --------------------------------------------------------

// Color is a 32-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Paint is an opaque painting recipe provided by the rendering backend,
// used where a plain color is not expressive enough (gradients, shaders).
// Two paints are considered equal when they compare equal with ==, which
// for backend-provided pointer types means identity.
type Paint interface {
	String() string
}

// Brush selects how a piece of text is drawn: either a plain color or an
// opaque paint object. Exactly one alternative is held.
type Brush = Either[Color, Paint]

// FontWeight is a font weight in the usual 100–900 scale.
type FontWeight int

// Font weights.
const (
	WeightNormal FontWeight = 400
	WeightMedium FontWeight = 500
	WeightBold   FontWeight = 700
)

func (w FontWeight) String() string {
	switch w {
	case WeightNormal:
		return "normal"
	case WeightBold:
		return "bold"
	}
	return fmt.Sprintf("w%d", int(w))
}

// FontStyle selects the glyph slant.
type FontStyle int

// Font styles.
const (
	StyleNormal FontStyle = iota
	StyleItalic
)

func (s FontStyle) String() string {
	if s == StyleItalic {
		return "italic"
	}
	return "normal"
}

// Decoration is a set of text decoration lines, combinable as a bit-set.
type Decoration int

// Decoration lines.
const (
	NoDecoration Decoration = 0
	Underline    Decoration = 1 << iota
	Overline
	LineThrough
)

// Add returns the union of two decoration sets.
func (d Decoration) Add(other Decoration) Decoration {
	return d | other
}

// Minus returns d without the lines in other.
func (d Decoration) Minus(other Decoration) Decoration {
	return d & ^other
}

// Contains reports whether every line of other is set in d.
func (d Decoration) Contains(other Decoration) bool {
	return d&other == other
}

func (d Decoration) String() string {
	if d == NoDecoration {
		return "none"
	}
	str := ""
	if d.Contains(Underline) {
		str += "underline "
	}
	if d.Contains(Overline) {
		str += "overline "
	}
	if d.Contains(LineThrough) {
		str += "line-through "
	}
	return str[:len(str)-1]
}

// --- Attribute kinds ---------------------------------------------------------

// Kind identifies one attribute layer of a Store. The declaration order of
// the kinds is the fold order for merged runs and therefore the composition
// priority, lowest first.
type Kind int

// Attribute kinds.
const (
	KindForeground Kind = iota
	KindBackground
	KindFontSize
	KindFontWeight
	KindFontStyle
	KindDecoration
	KindLetterSpacing
	KindWordSpacing
	KindLineHeight

	numKinds
)

func (k Kind) String() string {
	switch k {
	case KindForeground:
		return "foreground"
	case KindBackground:
		return "background"
	case KindFontSize:
		return "font-size"
	case KindFontWeight:
		return "font-weight"
	case KindFontStyle:
		return "font-style"
	case KindDecoration:
		return "decoration"
	case KindLetterSpacing:
		return "letter-spacing"
	case KindWordSpacing:
		return "word-spacing"
	case KindLineHeight:
		return "line-height"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// --- Attribute bundle --------------------------------------------------------

// Attributes is a bundle of attribute values for a range overwrite. A nil
// field leaves the corresponding attribute layer untouched.
type Attributes struct {
	Foreground    *Brush
	Background    *Brush
	FontSize      *float64
	FontWeight    *FontWeight
	FontStyle     *FontStyle
	Decoration    *Decoration
	LetterSpacing *float64
	WordSpacing   *float64
	LineHeight    *float64
}

// --- Equality predicates -----------------------------------------------------

// eqPtr compares two possibly-nil pointers by pointee value. Nil stands for
// "attribute not set" inside a run and only equals nil.
func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqBrush(a, b *Brush) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return a.right == b.right
	}
	return a.left == b.left
}

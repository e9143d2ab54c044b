package attribs

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/attribs/rbtree"
	"github.com/npillmayer/attribs/runs"
)

// Store is an immutable collection of attribute layers, one persistent run
// tree per attribute kind. The zero value is a valid store without any
// attributes set.
//
// Stores are values: copying one is O(1) and shares all trees. Overwrite
// replaces only the trees named by its bundle, so deriving a new version
// costs O(1) per untouched attribute. A store version, once handed out, is
// never mutated; readers may use it from any goroutine without locking.
type Store struct {
	foreground    *rbtree.Tree[*Brush]
	background    *rbtree.Tree[*Brush]
	fontSize      *rbtree.Tree[*float64]
	fontWeight    *rbtree.Tree[*FontWeight]
	fontStyle     *rbtree.Tree[*FontStyle]
	decoration    *rbtree.Tree[*Decoration]
	letterSpacing *rbtree.Tree[*float64]
	wordSpacing   *rbtree.Tree[*float64]
	lineHeight    *rbtree.Tree[*float64]
}

// Overwrite sets every non-nil attribute of bundle on the offsets
// [start, end) and returns the resulting store version. end may be
// rbtree.Unbounded to style to the end of the text.
func (s Store) Overwrite(start, end int64, bundle Attributes) Store {
	next := s
	if bundle.Foreground != nil {
		next.foreground = rbtree.InsertRange(s.foreground, start, end, bundle.Foreground, eqBrush)
	}
	if bundle.Background != nil {
		next.background = rbtree.InsertRange(s.background, start, end, bundle.Background, eqBrush)
	}
	if bundle.FontSize != nil {
		next.fontSize = rbtree.InsertRange(s.fontSize, start, end, bundle.FontSize, eqPtr[float64])
	}
	if bundle.FontWeight != nil {
		next.fontWeight = rbtree.InsertRange(s.fontWeight, start, end, bundle.FontWeight, eqPtr[FontWeight])
	}
	if bundle.FontStyle != nil {
		next.fontStyle = rbtree.InsertRange(s.fontStyle, start, end, bundle.FontStyle, eqPtr[FontStyle])
	}
	if bundle.Decoration != nil {
		next.decoration = rbtree.InsertRange(s.decoration, start, end, bundle.Decoration, eqPtr[Decoration])
	}
	if bundle.LetterSpacing != nil {
		next.letterSpacing = rbtree.InsertRange(s.letterSpacing, start, end, bundle.LetterSpacing, eqPtr[float64])
	}
	if bundle.WordSpacing != nil {
		next.wordSpacing = rbtree.InsertRange(s.wordSpacing, start, end, bundle.WordSpacing, eqPtr[float64])
	}
	if bundle.LineHeight != nil {
		next.lineHeight = rbtree.InsertRange(s.lineHeight, start, end, bundle.LineHeight, eqPtr[float64])
	}
	return next
}

// ComposedStyle is the style in effect over one merged run: every attribute
// layer contributes its field. Nil fields mean "attribute not set here".
//
// Merged-run iteration reuses a single ComposedStyle per merge, updating it
// field by field at every change-point; clients must copy it if they want to
// keep a run's style beyond the next iteration step.
type ComposedStyle struct {
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

// At returns the composed style in effect at offset pos.
func (s Store) At(pos int64) ComposedStyle {
	var cs ComposedStyle
	if n := s.foreground.Floor(pos); n != nil {
		cs.Foreground = n.Value()
	}
	if n := s.background.Floor(pos); n != nil {
		cs.Background = n.Value()
	}
	if n := s.fontSize.Floor(pos); n != nil {
		cs.FontSize = n.Value()
	}
	if n := s.fontWeight.Floor(pos); n != nil {
		cs.FontWeight = n.Value()
	}
	if n := s.fontStyle.Floor(pos); n != nil {
		cs.FontStyle = n.Value()
	}
	if n := s.decoration.Floor(pos); n != nil {
		cs.Decoration = n.Value()
	}
	if n := s.letterSpacing.Floor(pos); n != nil {
		cs.LetterSpacing = n.Value()
	}
	if n := s.wordSpacing.Floor(pos); n != nil {
		cs.WordSpacing = n.Value()
	}
	if n := s.lineHeight.Floor(pos); n != nil {
		cs.LineHeight = n.Value()
	}
	return cs
}

// attrValue is one attribute layer's contribution at a change-point: the
// layer's kind plus its (possibly nil) typed pointer value. Pointers fit an
// interface word, so boxing into the any does not allocate.
type attrValue struct {
	kind  Kind
	value any
}

// MergedRunsFrom merges all attribute layers into one ascending sequence of
// (offset, composed style) runs, starting with the run in effect at offset
// start. The iterator folds into a single reusable ComposedStyle, so
// consuming a full composed style per run allocates nothing per attribute.
//
// The sequence always begins with a run starting at offset 0; offsets
// before start are simply those of the runs still in effect at start.
func (s Store) MergedRunsFrom(start int64) runs.Iterator[*ComposedStyle] {
	its := make([]runs.Iterator[attrValue], 0, numKinds)
	its = appendLayer(its, s.foreground, KindForeground, start)
	its = appendLayer(its, s.background, KindBackground, start)
	its = appendLayer(its, s.fontSize, KindFontSize, start)
	its = appendLayer(its, s.fontWeight, KindFontWeight, start)
	its = appendLayer(its, s.fontStyle, KindFontStyle, start)
	its = appendLayer(its, s.decoration, KindDecoration, start)
	its = appendLayer(its, s.letterSpacing, KindLetterSpacing, start)
	its = appendLayer(its, s.wordSpacing, KindWordSpacing, start)
	its = appendLayer(its, s.lineHeight, KindLineHeight, start)
	acc := &ComposedStyle{}
	return runs.Merge(its, foldComposed, acc)
}

// appendLayer contributes one attribute tree's run cursor, wrapped so the
// layer reports "not set" from offset 0 up to its first change-point.
// Absent layers contribute nothing, not an iterator.
func appendLayer[T any](its []runs.Iterator[attrValue], tree *rbtree.Tree[*T], kind Kind, start int64) []runs.Iterator[attrValue] {
	if tree.IsEmpty() {
		return its
	}
	layer := runs.Map(tree.RunsEndAfter(start), func(v *T) attrValue {
		return attrValue{kind: kind, value: v}
	})
	return append(its, runs.WithDefault(layer, attrValue{kind: kind, value: (*T)(nil)}))
}

// foldComposed updates the accumulator field addressed by the attribute's
// kind. It mutates cs in place and returns it, making composed state carry
// over from one change-point to the next.
func foldComposed(cs *ComposedStyle, a attrValue) *ComposedStyle {
	switch a.kind {
	case KindForeground:
		cs.Foreground = a.value.(*Brush)
	case KindBackground:
		cs.Background = a.value.(*Brush)
	case KindFontSize:
		cs.FontSize = a.value.(*float64)
	case KindFontWeight:
		cs.FontWeight = a.value.(*FontWeight)
	case KindFontStyle:
		cs.FontStyle = a.value.(*FontStyle)
	case KindDecoration:
		cs.Decoration = a.value.(*Decoration)
	case KindLetterSpacing:
		cs.LetterSpacing = a.value.(*float64)
	case KindWordSpacing:
		cs.WordSpacing = a.value.(*float64)
	case KindLineHeight:
		cs.LineHeight = a.value.(*float64)
	default:
		T().Errorf("attribs: unknown attribute kind %d in merge", int(a.kind))
	}
	return cs
}

package textlayout

import "errors"

// ErrNotHandled is returned by an Engine that declines to lay out a
// source. CreateLayout treats it as a normal outcome and falls back
// to the standard engine.
var ErrNotHandled = errors.New("textlayout: layout not handled by engine")

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("textlayout: font data is empty")

package gild

import "errors"

// Base errors for the four failure classes. Every error returned by this
// package wraps one of these, so callers can branch with errors.Is
var (
	// ErrColor reports a malformed color, such as a bad hex literal
	ErrColor = errors.New("color error")
	// ErrStyle reports an unknown token in a style description
	ErrStyle = errors.New("style error")
	// ErrMarkup reports a closing tag with no matching opening tag
	ErrMarkup = errors.New("markup error")
	// ErrInvalidRange reports span bounds outside the text, or start > end
	ErrInvalidRange = errors.New("invalid range")
)

// Package character provides predicates over single runes.
package character

import "unicode"

// Rune is any type whose underlying type is rune.
type Rune interface {
	~rune
}

// IsControl accepts control characters (Unicode category Cc).
type IsControl[T Rune] struct{}

func (IsControl[T]) Test(value T) bool { return unicode.IsControl(rune(value)) }
func (IsControl[T]) Message() string   { return "must be a control character" }

// IsDigit accepts the ASCII digits 0 through 9.
type IsDigit[T Rune] struct{}

func (IsDigit[T]) Test(value T) bool { return '0' <= value && value <= '9' }
func (IsDigit[T]) Message() string   { return "must be a digit" }

// IsLowercase accepts characters with the Unicode Lowercase property, which
// adds Other_Lowercase (ª, ⓐ) to the Ll letters.
type IsLowercase[T Rune] struct{}

func (IsLowercase[T]) Test(value T) bool {
	r := rune(value)
	return unicode.IsLower(r) || unicode.Is(unicode.Other_Lowercase, r)
}
func (IsLowercase[T]) Message() string { return "must be a lowercase character" }

// IsUppercase accepts characters with the Unicode Uppercase property, which
// adds Other_Uppercase (Ⓐ, Ⅻ) to the Lu letters.
type IsUppercase[T Rune] struct{}

func (IsUppercase[T]) Test(value T) bool {
	r := rune(value)
	return unicode.IsUpper(r) || unicode.Is(unicode.Other_Uppercase, r)
}
func (IsUppercase[T]) Message() string { return "must be an uppercase character" }

// IsNumeric accepts any Unicode number: decimal digits, letter numbers such
// as Ⅻ, and other numbers such as ½.
type IsNumeric[T Rune] struct{}

func (IsNumeric[T]) Test(value T) bool { return unicode.IsNumber(rune(value)) }
func (IsNumeric[T]) Message() string   { return "must be a numeric character" }

// IsWhitespace accepts Unicode white space.
type IsWhitespace[T Rune] struct{}

func (IsWhitespace[T]) Test(value T) bool { return unicode.IsSpace(rune(value)) }
func (IsWhitespace[T]) Message() string   { return "must be a whitespace character" }

// IsHexDigit accepts the ASCII hexadecimal digits, in either case.
type IsHexDigit[T Rune] struct{}

func (IsHexDigit[T]) Test(value T) bool {
	r := rune(value)
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
func (IsHexDigit[T]) Message() string { return "must be a valid hex character" }

// Package textutil provides token normalization for feature extraction.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var digitRe = regexp.MustCompile(`\d`)

// Simplify lowercases a token and folds every digit to 0, so that rare
// numeric tokens share a single form.
func Simplify(token string) string {
	return digitRe.ReplaceAllString(strings.ToLower(token), "0")
}

// Suffix returns the last n runes of a token, or the whole token when it
// is shorter.
func Suffix(token string, n int) string {
	runes := []rune(token)
	if len(runes) <= n {
		return token
	}
	return string(runes[len(runes)-n:])
}

// Prefix returns the first n runes of a token, or the whole token when it
// is shorter.
func Prefix(token string, n int) string {
	runes := []rune(token)
	if len(runes) <= n {
		return token
	}
	return string(runes[:n])
}

// Shape abstracts a token to a character-class pattern: X for upper case,
// x for lower case, 0 for digits, other runes kept. Runs are collapsed.
func Shape(token string) string {
	var buf strings.Builder
	var prev rune
	for _, r := range token {
		var c rune
		switch {
		case unicode.IsUpper(r):
			c = 'X'
		case unicode.IsLower(r):
			c = 'x'
		case unicode.IsDigit(r):
			c = '0'
		default:
			c = r
		}
		if c != prev {
			buf.WriteRune(c)
			prev = c
		}
	}
	return buf.String()
}

// HasDigit reports whether the token contains a digit.
func HasDigit(token string) bool {
	for _, r := range token {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// HasUpper reports whether the token contains an upper-case letter.
func HasUpper(token string) bool {
	for _, r := range token {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// DigitRatio returns the fraction of runes that are digits.
func DigitRatio(token string) float64 {
	if token == "" {
		return 0
	}
	total := utf8.RuneCountInString(token)
	digits := 0
	for _, r := range token {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return float64(digits) / float64(total)
}

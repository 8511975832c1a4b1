package meme

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxFaceWidth is the widest text between parentheses still taken for a face.
const MaxFaceWidth = 10

// operators may appear in a plain expression besides letters, digits and
// spaces.
const operators = "+-*/^%!,.=|&"

// IsFace reports whether the text found between a pair of parentheses
// looks like an emoticon face.
//
// The candidate must not be wider than MaxFaceWidth and must show some
// evidence of being a face: a multi-byte, wide, zero-width or high
// codepoint, or content which is not a plain expression.
func IsFace(candidate string) bool {
	totalWidth := Width(candidate)
	if totalWidth > MaxFaceWidth {
		return false
	}
	var multiByte, wide, zeroWidth, high int
	for _, r := range candidate {
		if r >= 1000 {
			high++
		}
		if utf8.RuneLen(r) >= 2 {
			multiByte++
		}
		switch RuneWidth(r) {
		case 0:
			zeroWidth++
		case 2:
			wide++
		}
	}
	return multiByte > 0 || wide > 0 || zeroWidth > 0 || high > 0 ||
		len(candidate) > totalWidth ||
		!IsExpression(candidate)
}

// IsExpression reports whether s consists of letters, digits, spaces and
// arithmetic or logic operators only, like "x^2 + y^2". The underscore is not
// an operator; it is the mouth of most ASCII faces.
func IsExpression(s string) bool {
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == ' ':
		case strings.ContainsRune(operators, r):
		default:
			return false
		}
	}
	return true
}

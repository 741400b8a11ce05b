package logic

import (
	"github.com/gpassos/minilog/runes"
)

func isUpper(ch rune) bool {
	return ch >= 'A' && ch <= 'Z'
}

func isLower(ch rune) bool {
	return ch >= 'a' && ch <= 'z'
}

func isIdent(ch rune) bool {
	return ch == '_' || isUpper(ch) || isLower(ch) || ch >= '0' && ch <= '9'
}

func isIdents(text string) bool {
	for _, ch := range text {
		if !isIdent(ch) {
			return false
		}
	}
	return true
}

// IsVarName reports whether text is a valid variable name: an ASCII
// uppercase letter followed by letters, digits and underscores.
func IsVarName(text string) bool {
	ch, ok := runes.First(text)
	if !ok {
		return false
	}
	if !isUpper(ch) {
		return false
	}
	return isIdents(text)
}

// IsConstName reports whether text is a valid constant or functor name: an
// ASCII lowercase letter followed by letters, digits and underscores.
func IsConstName(text string) bool {
	ch, ok := runes.First(text)
	if !ok {
		return false
	}
	if !isLower(ch) {
		return false
	}
	return isIdents(text)
}

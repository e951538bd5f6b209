package publishing

import (
	"fmt"
	"unicode/utf8"

	"github.com/jsamuelsen11/bylines/internal/domain"
)

// Length bounds are inclusive and counted in runes.
const (
	MinMagazineNameLen = 2
	MaxMagazineNameLen = 16
	MinTitleLen        = 5
	MaxTitleLen        = 50
)

// ContributingThreshold is the number of articles in one magazine an author
// must exceed to count as a contributing author of it.
const ContributingThreshold = 2

// Each rule returns "" when the value is acceptable and a field message
// otherwise, so callers can collect several failures into one
// domain.ValidationError.

func authorNameRule(name string) string {
	if name == "" {
		return domain.MsgRequired
	}
	return ""
}

func magazineNameRule(name string) string {
	return lengthRule(name, MinMagazineNameLen, MaxMagazineNameLen)
}

func categoryRule(category string) string {
	if category == "" {
		return domain.MsgRequired
	}
	return ""
}

func titleRule(title string) string {
	return lengthRule(title, MinTitleLen, MaxTitleLen)
}

func lengthRule(s string, lo, hi int) string {
	n := utf8.RuneCountInString(s)
	if n < lo || n > hi {
		return fmt.Sprintf("must be %d-%d characters, got %d", lo, hi, n)
	}
	return ""
}

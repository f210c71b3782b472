package humanize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first word of s using Lithuanian casing rules,
// for when a phrase starts a sentence: "už 5 minučių" -> "Už 5 minučių".
func Capitalize(s string) string {
	first, rest, found := strings.Cut(s, " ")
	first = cases.Title(language.Lithuanian).String(first)
	if !found {
		return first
	}
	return first + " " + rest
}

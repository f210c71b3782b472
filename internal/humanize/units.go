package humanize

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownVariant = errors.New("unknown variant")

// Variant selects the grammatical case a quantity is rendered in.
type Variant int

const (
	// Ago is used for elapsed time: "prieš 5 minutes".
	Ago Variant = iota
	// Noun is the standalone form: "5 minutės".
	Noun
	// Since is used for time remaining: "už 5 minučių".
	Since
)

var variantNames = [...]string{
	Ago:   "ago",
	Noun:  "noun",
	Since: "since",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant parses "ago", "noun" or "since", ignoring case.
func ParseVariant(s string) (Variant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for v, name := range variantNames {
		if name == s {
			return Variant(v), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

type Unit int

const (
	Second Unit = iota
	Minute
	Hour
	Day
	Week
)

var unitNames = [...]string{
	Second: "second",
	Minute: "minute",
	Hour:   "hour",
	Day:    "day",
	Week:   "week",
}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

var declensions = [...][3]Forms{
	Second: {
		Ago:   {Ones: "sekundę", Tens: "sekundžių", Plural: "sekundes"},
		Noun:  {Ones: "sekundė", Tens: "sekundžių", Plural: "sekundės"},
		Since: {Ones: "sekundės", Tens: "sekundžių", Plural: "sekundžių"},
	},
	Minute: {
		Ago:   {Ones: "minutę", Tens: "minučių", Plural: "minutes"},
		Noun:  {Ones: "minutė", Tens: "minučių", Plural: "minutės"},
		Since: {Ones: "minutės", Tens: "minučių", Plural: "minučių"},
	},
	Hour: {
		Ago:   {Ones: "valandą", Tens: "valandų", Plural: "valandas"},
		Noun:  {Ones: "valanda", Tens: "valandų", Plural: "valandos"},
		Since: {Ones: "valandos", Tens: "valandų", Plural: "valandų"},
	},
	Day: {
		Ago:   {Ones: "dieną", Tens: "dienų", Plural: "dienas"},
		Noun:  {Ones: "diena", Tens: "dienų", Plural: "dienos"},
		Since: {Ones: "dienos", Tens: "dienų", Plural: "dienų"},
	},
	Week: {
		Ago:   {Ones: "savaitę", Tens: "savaičių", Plural: "savaites"},
		Noun:  {Ones: "savaitė", Tens: "savaičių", Plural: "savaitės"},
		Since: {Ones: "savaitės", Tens: "savaičių", Plural: "savaičių"},
	},
}

// Forms returns the declension of u for variant v.
func (u Unit) Forms(v Variant) Forms {
	return declensions[u][v]
}

// Words returns n followed by u declined for n and v, e.g. "3 valandos".
func (u Unit) Words(n int, v Variant) string {
	return Words(n, u.Forms(v))
}

package humanize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNegativeCount = errors.New("negative count")

// Forms holds the word forms a Lithuanian noun takes after a numeral.
//
//   - Ones is used for 1, 21, 31, 41...
//   - Tens is used for 10..20, 30, 40...
//   - Plural is used for everything else.
//   - Zero is used for 0; Tens is used instead if it's empty.
//
// A form may contain a single %d, which is replaced with the number. A
// literal percent sign must be written as %%. Forms without %d get the number
// prepended ("5 minutės"), unless Custom is set, in which case they are
// returned as is.
type Forms struct {
	Ones   string
	Tens   string
	Plural string
	Zero   string
	Custom bool
}

// Words returns n followed by the matching word form. It panics if n is
// negative.
func Words(n int, f Forms) string {
	if n < 0 {
		panic(fmt.Errorf("humanize.Words: %w: %d", ErrNegativeCount, n))
	}

	form := f.pick(n)
	if hasPlaceholder(form) {
		return fmt.Sprintf(form, n)
	}

	form = strings.ReplaceAll(form, "%%", "%")
	if f.Custom {
		return form
	}
	return strconv.Itoa(n) + " " + form
}

func (f Forms) pick(n int) string {
	last := n % 10
	switch {
	case n == 0 && f.Zero != "":
		return f.Zero
	case last == 0 || (n >= 10 && n <= 20):
		return f.Tens
	case last == 1:
		return f.Ones
	default:
		return f.Plural
	}
}

// hasPlaceholder reports whether s has a %d that is not part of an escaped %%.
func hasPlaceholder(s string) bool {
	for i := 0; i < len(s)-1; i++ {
		if s[i] != '%' {
			continue
		}
		if s[i+1] == 'd' {
			return true
		}
		i++
	}
	return false
}

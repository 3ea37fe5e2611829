package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/divin-k/guessquest/internal/model"
)

var (
	wholeNumberPattern = regexp.MustCompile(`^\d+$`)
	decimalPattern     = regexp.MustCompile(`^\d+\.\d+$`)
)

// GuessVerdict classifies a raw guess into exactly one format outcome
type GuessVerdict int

const (
	// GuessValid means the input is a whole number in an acceptable format.
	// Whether it is in range is a separate downstream check.
	GuessValid GuessVerdict = iota
	// GuessDecimal means the input is a decimal value like "42.5"
	GuessDecimal
	// GuessNotANumber means the input is not a number at all
	GuessNotANumber
)

// IsNonEmptyText returns true iff the trimmed input is non-empty
func IsNonEmptyText(input string) bool {
	return strings.TrimSpace(input) != ""
}

// ClassifyGuess classifies raw input as a whole number, a decimal, or not
// a number. The returned value is meaningful only when the verdict is
// GuessValid.
func ClassifyGuess(input string) (int, GuessVerdict) {
	if wholeNumberPattern.MatchString(input) {
		n, err := strconv.Atoi(input)
		if err != nil {
			// Format-valid but too large to represent; the range check
			// rejects zero with its own message.
			return 0, GuessValid
		}
		return n, GuessValid
	}
	if decimalPattern.MatchString(input) {
		return 0, GuessDecimal
	}
	return 0, GuessNotANumber
}

// GuessInRange reports whether a format-valid guess is inside the secret
// number bounds
func GuessInRange(n int) bool {
	return n >= model.SecretMin && n <= model.SecretMax
}

package cubeless

import (
	"regexp"
	"strings"
)

// tokenPattern matches one move: a move letter, an optional digit run and
// an optional prime mark.
var tokenPattern = regexp.MustCompile(`([RUFBLDrufbldxyzEMS])(\d*)('?)`)

// Tokenize scans an algorithm string left to right and returns every
// well-formed move in it. Whitespace separates moves, but is not required:
// "RU2" yields R and U2.
//
// Anything between matches is skipped rather than rejected. The skipped
// non-whitespace fragments are returned for diagnostics only.
func Tokenize(alg string) (moves []Move, skipped []string) {
	matches := tokenPattern.FindAllStringSubmatchIndex(alg, -1)
	moves = make([]Move, 0, len(matches))

	last := 0
	for _, loc := range matches {
		skipped = append(skipped, strings.Fields(alg[last:loc[0]])...)
		moves = append(moves, moveFromMatch(alg, loc))
		last = loc[1]
	}
	skipped = append(skipped, strings.Fields(alg[last:])...)

	return moves, skipped
}

// moveFromMatch builds a Move from a tokenPattern submatch index slice.
func moveFromMatch(s string, loc []int) Move {
	kind, _ := KindFromLetter(s[loc[2]])
	digits := s[loc[4]:loc[5]]
	prime := loc[7] > loc[6]
	return Move{Kind: kind, Amount: ParseAmount(digits, prime)}
}

// ParseAmount turns a move suffix into a quarter-turn amount in 0..3.
// An empty digit run counts as 1; the count is reduced mod 4 and a prime
// mark then inverts it. So "2'" is 2, "3" is 3, "4" is 0 and "'" is 3.
func ParseAmount(digits string, prime bool) int {
	raw := 1
	if digits != "" {
		// n mod 4 only depends on the last two decimal digits.
		if len(digits) > 2 {
			digits = digits[len(digits)-2:]
		}
		raw = 0
		for i := 0; i < len(digits); i++ {
			raw = raw*10 + int(digits[i]-'0')
		}
		raw %= 4
	}

	if prime {
		return (4 - raw) % 4
	}
	return raw
}

package caesar

import (
	"errors"
	"math/big"
)

// ErrShiftSyntax is returned when shift text is not an optionally negative
// decimal integer.
var ErrShiftSyntax = errors.New("shift must be an optionally negative decimal integer")

var bigAlphabetLen = big.NewInt(AlphabetLen)

// ValidShiftSyntax reports whether s is an optional leading '-' followed by
// one or more ASCII digits. Magnitude is not checked.
func ValidShiftSyntax(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseShift parses shift text of any magnitude and returns it reduced into
// [0, AlphabetLen). The reduction is exact, so "-1" yields 25 and a value far
// beyond the int range yields its true residue.
func ParseShift(s string) (int, error) {
	if !ValidShiftSyntax(s) {
		return 0, ErrShiftSyntax
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, ErrShiftSyntax
	}
	// Mod is Euclidean: the result is never negative.
	return int(n.Mod(n, bigAlphabetLen).Int64()), nil
}

// Normalize reduces k into [0, AlphabetLen).
func Normalize(k int) int {
	return (k%AlphabetLen + AlphabetLen) % AlphabetLen
}

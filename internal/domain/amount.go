package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// units accepted as amount suffixes, with their number of decimals
var units = []struct {
	suffix   string
	decimals int
}{
	{"ether", 18},
	{"gwei", 9},
	{"wei", 0},
}

// ParseAmount parses a token amount. It accepts plain decimal integers, 0x hex
// integers, and decimal numbers with an ether, gwei or wei suffix
// ("1.5ether"). Values that do not fit in 256 bits fail with ErrOverflow.
func ParseAmount(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := uint256.FromHex(s)
		if err != nil {
			return nil, wrapAmountErr(s, err)
		}
		return v, nil
	}

	decimals := 0
	for _, u := range units {
		if strings.HasSuffix(s, u.suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
			decimals = u.decimals
			break
		}
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if hasFrac {
		frac = strings.TrimRight(frac, "0")
		if len(frac) > decimals {
			return nil, fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, s, decimals)
		}
	}
	if whole == "" {
		whole = "0"
	}
	digits := whole + frac + strings.Repeat("0", decimals-len(frac))
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}

	v, err := uint256.FromDecimal(digits)
	if err != nil {
		return nil, wrapAmountErr(s, err)
	}
	return v, nil
}

func wrapAmountErr(s string, err error) error {
	if errors.Is(err, uint256.ErrBig256Range) {
		return fmt.Errorf("%w: %s does not fit in 256 bits", ErrOverflow, s)
	}
	return fmt.Errorf("%w: %q: %v", ErrInvalidAmount, s, err)
}

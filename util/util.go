package util

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// AddChecked adds b to a and reports false if the result does not fit in A.
func AddChecked[A constraints.Unsigned](a A, b A) (A, bool) {
	sum := a + b
	return sum, sum >= a
}

// ParseHex accepts "00 04 02 01", "00040201" or "0x00,0x04,...".
func ParseHex(s string) ([]byte, error) {
	cleaned := strings.NewReplacer("0x", "", "0X", "", " ", "", ",", "", ":", "", "\n", "", "\t", "").Replace(s)
	res, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse %q as hex", s)
	}
	return res, nil
}

func FormatHex(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = hex.EncodeToString([]byte{v})
	}
	return strings.Join(parts, " ")
}

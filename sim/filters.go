package sim

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownFilter is returned when a band code has no entry in the filter table.
var ErrUnknownFilter = errors.New("unknown filter code")

// alphaToFilter maps single-character band codes to HST filter names.
// It is the only copy of this table; nothing writes to it after init.
var alphaToFilter = map[byte]string{
	'H': "F160W", 'N': "F140W", 'J': "F125W",
	'Q': "F153M", 'P': "F139M", 'O': "F127M",
	'7': "F763M", '8': "F845M",
	'X': "F775W", 'I': "F814W",
}

// FilterName returns the filter name for a band code.
func FilterName(code byte) (string, error) {
	name, ok := alphaToFilter[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFilter, code)
	}
	return name, nil
}

// FilterCodes returns every known band code in ascending byte order.
func FilterCodes() []byte {
	codes := make([]byte, 0, len(alphaToFilter))
	for c := range alphaToFilter {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

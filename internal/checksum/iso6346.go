package checksum

import "fmt"

// iso6346Letters maps owner-code letters to their ISO 6346 numeric
// values. The sequence skips multiples of 11 (11, 22, 33), which is why
// A starts at 10 and the table is irregular.
var iso6346Letters = map[byte]int{
	'A': 10, 'B': 12, 'C': 13, 'D': 14, 'E': 15, 'F': 16, 'G': 17,
	'H': 18, 'I': 19, 'J': 20, 'K': 21, 'L': 23, 'M': 24, 'N': 25,
	'O': 26, 'P': 27, 'Q': 28, 'R': 29, 'S': 30, 'T': 31, 'U': 32,
	'V': 34, 'W': 35, 'X': 36, 'Y': 37, 'Z': 38,
}

// ISO6346 computes the check digit for a container owner code plus
// serial number: exactly 4 upper-case letters followed by 6 digits.
// Each character value is weighted by 2^position (position 0 is the
// leftmost character) and the weighted sum is reduced mod 11; a result
// of 10 maps to 0 as mandated by the standard.
func ISO6346(ownerSerial string) (int, error) {
	if len(ownerSerial) != 10 {
		return 0, fmt.Errorf("invalid format: want 10 characters (4 letters + 6 digits), got %d", len(ownerSerial))
	}

	sum := 0
	weight := 1
	for i := 0; i < 10; i++ {
		c := ownerSerial[i]
		var v int
		switch {
		case i < 4:
			val, ok := iso6346Letters[c]
			if !ok {
				return 0, fmt.Errorf("invalid format: position %d must be an upper-case letter", i+1)
			}
			v = val
		case c >= '0' && c <= '9':
			v = int(c - '0')
		default:
			return 0, fmt.Errorf("invalid format: position %d must be a digit", i+1)
		}
		sum += v * weight
		weight *= 2
	}

	d := sum % 11
	if d == 10 {
		d = 0
	}
	return d, nil
}

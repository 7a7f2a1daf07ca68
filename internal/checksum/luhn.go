// Package checksum holds the check-digit primitives shared by the
// identifier validators: a Luhn variant for tracking numbers and the
// ISO 6346 algorithm for container numbers.
package checksum

// Luhn computes the Luhn check digit for the digits contained in s.
// Non-digit characters are ignored. Starting from the rightmost digit,
// every second digit is doubled (9 is subtracted from doubles above 9)
// and the results are summed; the check digit is (10 - sum mod 10) mod 10.
// An input without digits yields 0.
func Luhn(s string) int {
	sum := 0
	double := true // the rightmost digit is doubled
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > '9' {
			continue
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}

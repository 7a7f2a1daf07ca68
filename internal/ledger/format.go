package ledger

import "strconv"

// FormatGNF renders a whole-franc amount with French-style thousand
// grouping, e.g. 1500000 -> "1 500 000 GNF". The separator is a plain
// space so report output stays byte-stable.
func FormatGNF(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	n := len(digits)
	grouped := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			grouped = append(grouped, ' ')
		}
		grouped = append(grouped, digits[i])
	}

	return sign + string(grouped) + " GNF"
}

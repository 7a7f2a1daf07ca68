// Package identifier validates and generates the structured identifiers
// used across the brokerage: internal tracking numbers, bills of lading
// and ISO 6346 container numbers. Every validator returns a result
// struct instead of an error; format failures and checksum failures
// carry distinguishable messages.
package identifier

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/nimbatransit/transit-tracker/internal/checksum"
)

// Regime codes accepted in tracking numbers.
const (
	RegimeImport    = "IM4" // definitive import (mise à la consommation)
	RegimeTransit   = "IT"
	RegimeTemporary = "AT"
	RegimeExport    = "EXPORT"
)

// countrySuffix terminates every tracking number.
const countrySuffix = "GN"

var regimes = map[string]bool{
	RegimeImport:    true,
	RegimeTransit:   true,
	RegimeTemporary: true,
	RegimeExport:    true,
}

// ValidRegime reports whether code is an accepted customs regime.
func ValidRegime(code string) bool {
	return regimes[strings.ToUpper(strings.TrimSpace(code))]
}

// GenerateTrackingNumber builds a fresh tracking number of the form
// <REGIME>-<YY>-<SEQ6>-<RAND3>-<C>-GN where C is the Luhn check digit
// over the concatenated digit groups. The sequence and suffix are
// random: uniqueness is practical, not guaranteed, and callers needing
// hard uniqueness must rely on the database unique index.
func GenerateTrackingNumber(regime string) (string, error) {
	regime = strings.ToUpper(strings.TrimSpace(regime))
	if !regimes[regime] {
		return "", fmt.Errorf("unknown customs regime %q", regime)
	}

	yy := time.Now().Format("06")
	seq := fmt.Sprintf("%06d", rand.Intn(1000000))
	suffix := fmt.Sprintf("%03d", rand.Intn(1000))
	check := checksum.Luhn(yy + seq + suffix)

	return fmt.Sprintf("%s-%s-%s-%s-%d-%s", regime, yy, seq, suffix, check, countrySuffix), nil
}

// TrackingResult is the outcome of validating a tracking number.
type TrackingResult struct {
	Valid  bool   `json:"valid"`
	Regime string `json:"regime,omitempty"`
	Error  string `json:"error,omitempty"`
}

var (
	twoDigits   = regexp.MustCompile(`^\d{2}$`)
	sixDigits   = regexp.MustCompile(`^\d{6}$`)
	threeDigits = regexp.MustCompile(`^\d{3}$`)
	oneDigit    = regexp.MustCompile(`^\d$`)
)

// ValidateTrackingNumber checks the delimiter structure and recomputes
// the embedded check digit. A structural problem yields a format error;
// a digit-group mismatch yields a message mentioning "checksum" so the
// two failure classes stay distinguishable.
func ValidateTrackingNumber(value string) TrackingResult {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(value)), "-")
	if len(parts) != 6 {
		return TrackingResult{Error: fmt.Sprintf("invalid tracking number format: expected 6 segments, got %d", len(parts))}
	}

	regime, yy, seq, suffix, check, country := parts[0], parts[1], parts[2], parts[3], parts[4], parts[5]
	switch {
	case !regimes[regime]:
		return TrackingResult{Error: fmt.Sprintf("invalid tracking number format: unknown regime %q", regime)}
	case !twoDigits.MatchString(yy):
		return TrackingResult{Error: "invalid tracking number format: year segment must be 2 digits"}
	case !sixDigits.MatchString(seq):
		return TrackingResult{Error: "invalid tracking number format: sequence segment must be 6 digits"}
	case !threeDigits.MatchString(suffix):
		return TrackingResult{Error: "invalid tracking number format: random segment must be 3 digits"}
	case !oneDigit.MatchString(check):
		return TrackingResult{Error: "invalid tracking number format: check segment must be a single digit"}
	case country != countrySuffix:
		return TrackingResult{Error: fmt.Sprintf("invalid tracking number format: must end in %s", countrySuffix)}
	}

	want := checksum.Luhn(yy + seq + suffix)
	got := int(check[0] - '0')
	if want != got {
		return TrackingResult{Error: fmt.Sprintf("checksum mismatch: expected %d, got %d", want, got)}
	}

	return TrackingResult{Valid: true, Regime: regime}
}

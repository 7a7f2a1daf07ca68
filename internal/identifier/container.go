package identifier

import (
	"fmt"
	"regexp"

	"github.com/nimbatransit/transit-tracker/internal/checksum"
)

// ContainerResult is the outcome of validating an ISO 6346 container
// number. On success the decomposed fields and both the provided and
// recomputed check digits are returned for audit purposes.
type ContainerResult struct {
	Valid              bool   `json:"valid"`
	Normalized         string `json:"normalized,omitempty"`
	OwnerCode          string `json:"owner_code,omitempty"`
	SerialNumber       string `json:"serial_number,omitempty"`
	CheckDigit         int    `json:"check_digit,omitempty"`
	ExpectedCheckDigit int    `json:"expected_check_digit,omitempty"`
	Error              string `json:"error,omitempty"`
}

var containerPattern = regexp.MustCompile(`^[A-Z]{4}\d{7}$`)

// ValidateContainerNumber normalizes the value (spaces and hyphens
// stripped, upper-cased), enforces the 4-letter + 7-digit shape and
// verifies the ISO 6346 check digit. Check-digit failures mention
// "check digit" so they are distinguishable from format failures.
func ValidateContainerNumber(value string) ContainerResult {
	normalized := NormalizeBL(value)

	if !containerPattern.MatchString(normalized) {
		return ContainerResult{
			Normalized: normalized,
			Error:      fmt.Sprintf("invalid container format: %q must be 4 letters followed by 7 digits", normalized),
		}
	}

	owner := normalized[:4]
	serial := normalized[4:10]
	provided := int(normalized[10] - '0')

	expected, err := checksum.ISO6346(owner + serial)
	if err != nil {
		return ContainerResult{Normalized: normalized, Error: "invalid container format: " + err.Error()}
	}

	if expected != provided {
		return ContainerResult{
			Normalized:         normalized,
			OwnerCode:          owner,
			SerialNumber:       serial,
			CheckDigit:         provided,
			ExpectedCheckDigit: expected,
			Error:              fmt.Sprintf("check digit mismatch: expected %d, got %d", expected, provided),
		}
	}

	return ContainerResult{
		Valid:              true,
		Normalized:         normalized,
		OwnerCode:          owner,
		SerialNumber:       serial,
		CheckDigit:         provided,
		ExpectedCheckDigit: expected,
	}
}

package forecast

import "strings"

// cepDigits is the length of a complete CEP.
const cepDigits = 8

// NormalizeCEP strips every non-digit character from the input, caps it at
// eight digits, and inserts a single hyphen after the fifth digit once at
// least six digits are present. It never fails: malformed or empty input
// normalizes to an empty or partially formatted string. Completeness is not
// validated here; that is the address resolver's concern.
func NormalizeCEP(input string) string {
	var digits strings.Builder
	for _, r := range input {
		if r < '0' || r > '9' {
			continue
		}
		digits.WriteRune(r)
		if digits.Len() == cepDigits {
			break
		}
	}

	s := digits.String()
	if len(s) < 6 {
		return s
	}
	return s[:5] + "-" + s[5:]
}

// CEPDigits returns only the digits of a (possibly formatted) CEP.
func CEPDigits(cep string) string {
	return strings.ReplaceAll(NormalizeCEP(cep), "-", "")
}

// IsCompleteCEP reports whether the input carries all eight digits.
func IsCompleteCEP(cep string) bool {
	return len(CEPDigits(cep)) == cepDigits
}

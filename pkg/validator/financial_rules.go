package validator

import (
	"regexp"
	"strings"
)

var (
	// ISO 4217 subset for common international commerce
	currencyCodes = map[string]bool{
		"USD": true, "EUR": true, "GBP": true, "JPY": true, "AUD": true, "CAD": true,
		"CHF": true, "CNY": true, "SEK": true, "NZD": true, "MXN": true, "SGD": true,
		"HKD": true, "NOK": true, "KRW": true, "TRY": true, "INR": true, "BRL": true,
		"ZAR": true, "PLN": true, "CZK": true, "HUF": true, "ILS": true, "CLP": true,
		"PHP": true, "AED": true, "COP": true, "SAR": true, "MYR": true, "RON": true,
		"THB": true, "BGN": true, "ISK": true, "DKK": true, "UAH": true,
	}

	currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
	digitsRegex       = regexp.MustCompile(`^\d+$`)
)

// CreditCard accepts 13 to 19 digit numbers passing the Luhn checksum.
// Spaces and dashes are ignored.
func CreditCard() Rule[string] {
	return check(func(v string) bool {
		return luhn(strings.NewReplacer(" ", "", "-", "").Replace(v))
	}, "must be a valid credit card number")
}

func luhn(digits string) bool {
	if len(digits) < 13 || len(digits) > 19 || !digitsRegex.MatchString(digits) {
		return false
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// CurrencyCode accepts known ISO 4217 codes, case-insensitively.
func CurrencyCode() Rule[string] {
	return check(func(v string) bool {
		upper := strings.ToUpper(strings.TrimSpace(v))
		return currencyCodeRegex.MatchString(upper) && currencyCodes[upper]
	}, "must be a valid ISO 4217 currency code")
}

// Package cardinput formats and classifies card numbers as they are
// typed. Classification is cosmetic only, it never influences
// validation or the payment attempt.
package cardinput

import (
	"strconv"
	"strings"
)

type CardType string

const (
	CardTypeVisa       CardType = "visa"
	CardTypeMastercard CardType = "mastercard"
	CardTypeUnknown    CardType = "unknown"
)

const maxCardDigits = 16

// Digits strips everything but digits and truncates past 16.
func Digits(input string) string {
	var sb strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
			if sb.Len() == maxCardDigits {
				break
			}
		}
	}
	return sb.String()
}

// FormatCardNumber groups the digits 4-4-4-4 with single spaces.
// Formatting an already formatted number yields the same result.
func FormatCardNumber(input string) string {
	digits := Digits(input)

	var sb strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			sb.WriteRune(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// DetectCardType classifies on the leading digits: 4 is visa, 51-55 or
// 2221-2720 is mastercard, anything else is unknown.
func DetectCardType(input string) CardType {
	digits := Digits(input)
	if digits == "" {
		return CardTypeUnknown
	}

	if digits[0] == '4' {
		return CardTypeVisa
	}

	if len(digits) >= 2 {
		prefix2, _ := strconv.Atoi(digits[0:2])
		if prefix2 >= 51 && prefix2 <= 55 {
			return CardTypeMastercard
		}
	}
	if len(digits) >= 4 {
		prefix4, _ := strconv.Atoi(digits[0:4])
		if prefix4 >= 2221 && prefix4 <= 2720 {
			return CardTypeMastercard
		}
	}

	return CardTypeUnknown
}

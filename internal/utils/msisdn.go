package utils

import "regexp"

// kenyanMSISDN matches a Safaricom-style number in international form without the plus sign
var kenyanMSISDN = regexp.MustCompile(`^254\d{9}$`)

// ValidateMSISDN reports whether msisdn is exactly 254 followed by nine digits.
// No normalization is applied; 07xx and +254 forms are rejected.
func ValidateMSISDN(msisdn string) bool {
	return kenyanMSISDN.MatchString(msisdn)
}

// MaskMSISDN keeps the country prefix and the last three digits visible for logging
func MaskMSISDN(msisdn string) string {
	if len(msisdn) <= 6 {
		return msisdn
	}
	masked := []byte(msisdn)
	for i := 3; i < len(masked)-3; i++ {
		masked[i] = '*'
	}
	return string(masked)
}

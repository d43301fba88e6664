// Package cardfamily classifies a decoded 20-digit access code into a
// named card family by its digit prefix, or rejects it.
package cardfamily

import "github.com/S-Sebb/TaikoSmartCardReader/internal/cardtype"

// banapassPrefixes are the 3-digit prefixes recognized by the MIFARE
// validator as Bandai Namco Banapass cards.
var banapassPrefixes = []string{
	"307",
}

// classicalAimePrefixes are the 5-digit prefixes recognized by the
// MIFARE validator as Classical AiMe cards.
var classicalAimePrefixes = []string{
	"00010",
	"01000",
}

// isAccessCode reports whether s is exactly 20 decimal digits.
func isAccessCode(s string) bool {
	if len(s) != 20 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateMifare classifies a candidate access code read off a MIFARE
// Classic block 2. It returns (family, true) on success, or ("", false)
// if the code is malformed or its prefix is unrecognized.
func ValidateMifare(accessCode string) (cardtype.CardType, bool) {
	if !isAccessCode(accessCode) {
		return "", false
	}

	prefix3 := accessCode[:3]
	for _, p := range banapassPrefixes {
		if prefix3 == p {
			return cardtype.BandaiNamcoBanapass, true
		}
	}

	prefix5 := accessCode[:5]
	for _, p := range classicalAimePrefixes {
		if prefix5 == p {
			return cardtype.ClassicalAiMe, true
		}
	}

	return "", false
}

// aicPrefixes maps the 3-digit AIC access-code prefix to its card family.
var aicPrefixes = map[string]cardtype.CardType{
	"500": cardtype.AICSegaAiMeLimited,
	"501": cardtype.AICSegaAiMe,
	"510": cardtype.AICBandaiNamcoBanapass,
	"520": cardtype.AICKonamiEAmusement,
	"530": cardtype.AICTaitoNESiCA,
}

// ValidateAIC classifies a candidate access code decoded off a FeliCa
// S_PAD-0 block. It returns (family, true) on success, or ("", false) if
// the code is malformed or its prefix is unrecognized.
func ValidateAIC(accessCode string) (cardtype.CardType, bool) {
	if !isAccessCode(accessCode) {
		return "", false
	}

	family, ok := aicPrefixes[accessCode[:3]]
	if !ok {
		return "", false
	}
	return family, true
}

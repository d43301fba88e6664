package cardfamily

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/S-Sebb/TaikoSmartCardReader/internal/cardtype"
)

// code builds a 20-digit access code: prefix followed by "1" padding.
func code(prefix string) string {
	return prefix + strings.Repeat("1", 20-len(prefix))
}

func TestValidateMifare(t *testing.T) {
	cases := []struct {
		name       string
		accessCode string
		wantType   cardtype.CardType
		wantOK     bool
	}{
		{"banapass ok", code("307"), cardtype.BandaiNamcoBanapass, true},
		{"classical aime ok", code("00010"), cardtype.ClassicalAiMe, true},
		{"classical aime second prefix", code("01000"), cardtype.ClassicalAiMe, true},
		{"unrecognized prefix", code("999"), "", false},
		{"21 digits is malformed", code("307") + "1", "", false},
		{"too short", "307123", "", false},
		{"non-digit", code("307")[:19] + "a", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ValidateMifare(tc.accessCode)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantType, got)
			}
		})
	}
}

func TestValidateAIC(t *testing.T) {
	cases := []struct {
		name       string
		accessCode string
		wantType   cardtype.CardType
		wantOK     bool
	}{
		{"sega aime limited", code("500"), cardtype.AICSegaAiMeLimited, true},
		{"sega aime", code("501"), cardtype.AICSegaAiMe, true},
		{"bandai namco", code("510"), cardtype.AICBandaiNamcoBanapass, true},
		{"konami", code("520"), cardtype.AICKonamiEAmusement, true},
		{"taito", code("530"), cardtype.AICTaitoNESiCA, true},
		{"unrecognized prefix", code("999"), "", false},
		{"malformed length", "5001234", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ValidateAIC(tc.accessCode)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantType, got)
			}
		})
	}
}

func TestIsAccessCode(t *testing.T) {
	assert.True(t, isAccessCode(code("1")))
	assert.False(t, isAccessCode("1234"))
	assert.False(t, isAccessCode(code("1")[:19]+"a"))
}

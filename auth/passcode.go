package auth

import (
	"github.com/yichun-tseng/snackshop/models"
)

// Codes is where the gate reads and writes the staff passcode.
type Codes interface {
	Passcode() string
	SetPasscode(code string) error
}

// Gate is the 8-digit passcode check in front of the staff dashboard. The
// code is stored and compared in the clear; this gate reproduces the shop's
// behavior, not a security posture.
type Gate struct {
	codes Codes
}

func NewGate(codes Codes) *Gate {
	return &Gate{codes: codes}
}

// Verify reports whether input exactly matches the current passcode.
func (g *Gate) Verify(input string) bool {
	return input == g.codes.Passcode()
}

// Set replaces the passcode. Anything other than exactly 8 ASCII digits is
// rejected and the stored code is left unchanged.
func (g *Gate) Set(newCode string) error {
	if !validPasscode(newCode) {
		return models.ErrInvalidPasscode
	}
	return g.codes.SetPasscode(newCode)
}

func validPasscode(code string) bool {
	if len(code) != 8 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

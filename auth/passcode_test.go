package auth

import (
	"errors"
	"testing"

	"github.com/yichun-tseng/snackshop/models"
)

type fakeCodes struct {
	code string
}

func (c *fakeCodes) Passcode() string { return c.code }

func (c *fakeCodes) SetPasscode(code string) error {
	c.code = code
	return nil
}

func TestGate(t *testing.T) {
	t.Run("set and verify", func(t *testing.T) {
		codes := &fakeCodes{code: "00000000"}
		gate := NewGate(codes)

		if err := gate.Set("1234"); !errors.Is(err, models.ErrInvalidPasscode) {
			t.Fatalf("expected ErrInvalidPasscode for short code, got %v", err)
		}
		if codes.code != "00000000" {
			t.Fatalf("rejected set must leave the stored code unchanged, got %q", codes.code)
		}

		if err := gate.Set("12345678"); err != nil {
			t.Fatalf("expected 8-digit code accepted, got %v", err)
		}
		if !gate.Verify("12345678") {
			t.Fatalf("expected verify to accept the new code")
		}
		if gate.Verify("88888888") {
			t.Fatalf("expected verify to reject a wrong code")
		}
	})

	t.Run("format rule is exactly 8 ascii digits", func(t *testing.T) {
		cases := []struct {
			code string
			ok   bool
		}{
			{"12345678", true},
			{"00000000", true},
			{"1234567", false},
			{"123456789", false},
			{"1234567a", false},
			{"1234 678", false},
			{"12.45678", false},
			{"", false},
			{"１２３４５６７８", false}, // full-width digits are not ASCII
		}

		for _, tc := range cases {
			codes := &fakeCodes{code: "00000000"}
			err := NewGate(codes).Set(tc.code)
			if tc.ok && err != nil {
				t.Errorf("Set(%q): expected success, got %v", tc.code, err)
			}
			if !tc.ok && !errors.Is(err, models.ErrInvalidPasscode) {
				t.Errorf("Set(%q): expected ErrInvalidPasscode, got %v", tc.code, err)
			}
		}
	})

	t.Run("verify is an exact string match", func(t *testing.T) {
		gate := NewGate(&fakeCodes{code: "12345678"})
		if gate.Verify("12345678 ") || gate.Verify(" 12345678") || gate.Verify("1234567") {
			t.Fatalf("verify must require an exact match")
		}
	})
}

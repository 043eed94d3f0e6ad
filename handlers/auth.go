package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yichun-tseng/snackshop/models"
	"github.com/yichun-tseng/snackshop/utils"
)

// Login exchanges the staff passcode for a session token.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	type Input struct {
		Passcode string `json:"passcode"`
	}

	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if !a.Gate.Verify(input.Passcode) {
		http.Error(w, "incorrect passcode", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateSessionToken()
	if err != nil {
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"token": token,
	})
}

// SetPasscode replaces the staff passcode. The format rule (exactly 8 ASCII
// digits) is enforced by the gate; a rejected code leaves the old one intact.
func (a *API) SetPasscode(w http.ResponseWriter, r *http.Request) {
	type Input struct {
		Passcode string `json:"passcode"`
	}

	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := a.Gate.Set(input.Passcode); err != nil {
		if errors.Is(err, models.ErrInvalidPasscode) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to store passcode", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"encoding/json"
	"net/http"
)

// GetAutoPrint reports the persisted auto-print preference.
func (a *API) GetAutoPrint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{
		"enabled": a.Trigger.Enabled(),
	})
}

// SetAutoPrint toggles automatic kitchen-ticket printing. The preference is
// persisted, then the live trigger picks the new value up. Turning the
// toggle off and on again does not re-print orders already printed in this
// process's lifetime.
func (a *API) SetAutoPrint(w http.ResponseWriter, r *http.Request) {
	type Input struct {
		Enabled bool `json:"enabled"`
	}

	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := a.Prefs.SetAutoPrint(input.Enabled); err != nil {
		http.Error(w, "failed to store preference", http.StatusInternalServerError)
		return
	}
	a.Trigger.SetEnabled(input.Enabled)

	w.WriteHeader(http.StatusNoContent)
}

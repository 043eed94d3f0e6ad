package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yichun-tseng/snackshop/export"
)

const dateLayout = "2006-01-02"

// ExportCSV streams the paid-order report for an inclusive date range:
// GET /api/export?start=2026-08-01&end=2026-08-31
func (a *API) ExportCSV(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		http.Error(w, "start and end dates are required", http.StatusBadRequest)
		return
	}

	start, err := time.ParseInLocation(dateLayout, startStr, time.Local)
	if err != nil {
		http.Error(w, "invalid start date", http.StatusBadRequest)
		return
	}
	end, err := time.ParseInLocation(dateLayout, endStr, time.Local)
	if err != nil {
		http.Error(w, "invalid end date", http.StatusBadRequest)
		return
	}
	if end.Before(start) {
		http.Error(w, "end date before start date", http.StatusBadRequest)
		return
	}

	paid := export.PaidOrders(a.Sync.Orders(), start, end)

	// Render the whole report before touching the response so a render
	// failure can still produce a clean error status.
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, paid); err != nil {
		http.Error(w, "failed to write export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="orders-`+startStr+`-`+endStr+`.csv"`)
	if _, err := buf.WriteTo(w); err != nil {
		logrus.WithError(err).Warn("export download interrupted")
	}
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yichun-tseng/snackshop/billing"
)

// ListTables returns the per-table open balances for the billing view.
func (a *API) ListTables(w http.ResponseWriter, r *http.Request) {
	type Output struct {
		Tables      []billing.TableBill `json:"tables"`
		Outstanding float64             `json:"outstanding"`
	}

	tables := a.Billing.Tables()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Output{
		Tables:      tables,
		Outstanding: billing.Outstanding(tables),
	})
}

// ClearTable settles every open order on one table. The operation is not
// atomic, so the response lists the outcome per order; callers retry only
// the failed subset.
func (a *API) ClearTable(w http.ResponseWriter, r *http.Request) {
	tableNumber := mux.Vars(r)["number"]

	type Result struct {
		OrderID string `json:"orderId"`
		Paid    bool   `json:"paid"`
		Error   string `json:"error,omitempty"`
	}
	type Output struct {
		Results []Result `json:"results"`
	}

	results, err := a.Billing.ClearTable(r.Context(), tableNumber)

	output := Output{Results: make([]Result, 0, len(results))}
	for _, res := range results {
		item := Result{OrderID: res.OrderID, Paid: res.Err == nil}
		if res.Err != nil {
			item.Error = res.Err.Error()
		}
		output.Results = append(output.Results, item)
	}

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		// some patches landed, some did not; the body says which
		w.WriteHeader(http.StatusMultiStatus)
	}
	json.NewEncoder(w).Encode(output)
}

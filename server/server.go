package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/yichun-tseng/snackshop/handlers"
	"github.com/yichun-tseng/snackshop/middlewares"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func SetupRoutes(api *handlers.API) *Server {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")

	// customer terminals: no session required
	router.HandleFunc("/orders", api.CreateOrder).Methods("POST")
	router.HandleFunc("/login", api.Login).Methods("POST")

	// staff dashboard
	staff := router.PathPrefix("/api").Subrouter()
	staff.Use(middlewares.StaffMiddleware)

	staff.HandleFunc("/orders", api.ListOrders).Methods("GET")
	staff.HandleFunc("/orders", api.CreateOrder).Methods("POST")
	staff.HandleFunc("/orders/{id}/status", api.UpdateStatus).Methods("POST")

	staff.HandleFunc("/tables", api.ListTables).Methods("GET")
	staff.HandleFunc("/tables/{number}/clear", api.ClearTable).Methods("POST")

	staff.HandleFunc("/export", api.ExportCSV).Methods("GET")

	staff.HandleFunc("/settings/autoprint", api.GetAutoPrint).Methods("GET")
	staff.HandleFunc("/settings/autoprint", api.SetAutoPrint).Methods("PUT")
	staff.HandleFunc("/settings/passcode", api.SetPasscode).Methods("PUT")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}

package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yichun-tseng/snackshop/auth"
	"github.com/yichun-tseng/snackshop/billing"
	"github.com/yichun-tseng/snackshop/config"
	"github.com/yichun-tseng/snackshop/database"
	"github.com/yichun-tseng/snackshop/handlers"
	"github.com/yichun-tseng/snackshop/lifecycle"
	"github.com/yichun-tseng/snackshop/ordersync"
	"github.com/yichun-tseng/snackshop/prefs"
	"github.com/yichun-tseng/snackshop/printing"
	"github.com/yichun-tseng/snackshop/server"
	"github.com/yichun-tseng/snackshop/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	config.Init()

	prefStore, err := prefs.Load(config.PrefsPath())
	if err != nil {
		logrus.Panicf("failed to load preferences, error: %v", err)
	}

	var orderStore store.RemoteOrderStore
	switch backend := config.StoreBackend(); backend {
	case "memory":
		orderStore = store.NewMemory()
		logrus.Warn("using in-memory order store; orders do not survive a restart")
	case "postgres":
		if err := database.ConnectAndMigrate(config.DatabaseURL()); err != nil {
			logrus.Panicf("failed to initialize database, error: %v", err)
		}
		logrus.Println("migration is successful")
		orderStore = store.NewPostgres(database.Shop, config.DatabaseURL())
	default:
		logrus.Panicf("unknown store backend %q", backend)
	}

	spool := os.Stdout
	if path := config.SpoolPath(); path != "" {
		spool, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			logrus.Panicf("failed to open printer spool, error: %v", err)
		}
	}

	syncClient := ordersync.New(orderStore)
	machine := lifecycle.New(syncClient, syncClient)
	aggregator := billing.New(syncClient, machine)
	trigger := printing.NewTrigger(printing.NewTicketPrinter(spool), prefStore.AutoPrint())
	syncClient.OnSnapshot(trigger.OnSnapshot)

	if err := syncClient.Start(); err != nil {
		logrus.Panicf("failed to subscribe to order stream, error: %v", err)
	}

	api := &handlers.API{
		Sync:    syncClient,
		Machine: machine,
		Billing: aggregator,
		Trigger: trigger,
		Prefs:   prefStore,
		Gate:    auth.NewGate(prefStore),
	}

	svr := server.SetupRoutes(api)
	go func() {
		logrus.Infof("listening on %s", config.Port())
		if err := svr.Run(config.Port()); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Panic("server stopped")
		}
	}()

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeout); err != nil {
		logrus.WithError(err).Error("failed to stop server cleanly!")
	}
	syncClient.Close()
	if err := database.ShutdownDatabase(); err != nil {
		logrus.WithError(err).Error("failed to close database connection!")
	}

	logrus.Info("system is shut ..zzz")
}

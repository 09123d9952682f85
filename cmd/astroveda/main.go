package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/astroveda/internal/cli"
	"github.com/alexanderramin/astroveda/internal/db"
	"github.com/alexanderramin/astroveda/internal/intelligence"
	"github.com/alexanderramin/astroveda/internal/llm"
	"github.com/alexanderramin/astroveda/internal/payment"
	"github.com/alexanderramin/astroveda/internal/repository"
	"github.com/alexanderramin/astroveda/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Determine DB path: env var or default ~/.astroveda/astroveda.db
	dbPath := os.Getenv("ASTROVEDA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".astroveda", "astroveda.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observers []service.UseCaseObserver
	if envBool("ASTROVEDA_LOG") {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Wire payment: a gateway secret, or a per-run one in sandbox mode.
	orders := repository.NewSQLiteOrderRepo(database)
	payCfg := payment.LoadConfig()
	var checkout payment.Checkout
	secret, err := payCfg.Secret()
	if err != nil {
		checkout = payment.DisabledCheckout{Err: err}
	} else {
		checkout = payment.NewSandboxCheckout(secret, orders)
	}

	kv := repository.NewSQLiteSessionStore(database)
	gate := service.NewPlanGate(
		kv,
		repository.NewSQLitePaymentRepo(database),
		db.NewSQLiteUnitOfWork(database),
		payment.NewSignatureVerifier(secret, orders),
		observers...,
	)

	app := &cli.App{
		Gate:     gate,
		Session:  service.NewSessionService(repository.NewSQLiteProfileStore(database), gate, observers...),
		Checkout: checkout,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	// Readings only when an endpoint credential is configured.
	llmCfg := llm.LoadConfig()
	if llmCfg.Configured() {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client := llm.NewChatClient(llmCfg, observer)
		app.Readings = service.NewReadingService(
			gate,
			intelligence.NewPredictionService(client),
			intelligence.NewSimulationService(client),
			observers...,
		)
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

func envBool(name string) bool {
	b, _ := strconv.ParseBool(os.Getenv(name))
	return b
}

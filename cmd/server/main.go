package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/copperline/budgeteer/internal/httpapi"
	"github.com/copperline/budgeteer/internal/month"
	"github.com/copperline/budgeteer/internal/service"
	"github.com/copperline/budgeteer/internal/store"
)

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8090"
	}

	ctx := context.Background()
	useMemoryStore := os.Getenv("USE_MEMORY_STORE") == "true" || os.Getenv("ENV") == "local"

	var (
		expenses store.ExpenseStore
		budgets  store.BudgetStore
	)
	if useMemoryStore {
		logger.Info("using in-memory store for local development")
		mem := store.NewMemoryStore()
		expenses, budgets = mem, mem
	} else {
		projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
		if projectID == "" {
			logger.Error("GOOGLE_CLOUD_PROJECT is required when not using the memory store")
			os.Exit(1)
		}
		client, err := firestore.NewClient(ctx, projectID)
		if err != nil {
			logger.Error("failed to create Firestore client", "error", err)
			os.Exit(1)
		}
		defer client.Close()

		fs := store.NewFirestoreStore(client)
		expenses, budgets = fs, fs
	}

	svc := service.New(expenses, budgets, month.SystemClock{}, logger)
	api := httpapi.NewServer(svc, month.SystemClock{}, logger)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:1234",
			"http://127.0.0.1:1234",
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"User-Agent",
			"X-User-ID",
		},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: h2c.NewHandler(c.Handler(api.Routes()), &http2.Server{}),
	}

	logger.Info("starting server", "port", port)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

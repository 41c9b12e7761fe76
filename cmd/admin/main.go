// cmd/admin/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"biblioteca/internal/books"
	"biblioteca/internal/client"
	"biblioteca/internal/loans"
	"biblioteca/internal/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	apiURL := getEnv("LIBRARY_API_URL", "http://localhost:8081")
	port := getEnv("PORT", "8080")

	shutdownTracing, err := setupTracing(ctx)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer shutdownTracing()

	creds, err := web.NewCredentials(
		getEnv("ADMIN_USER", "admin"),
		getEnv("ADMIN_PASSWORD", "admin"),
	)
	if err != nil {
		log.Fatalf("Failed to prepare admin credentials: %v", err)
	}

	api := client.New(apiURL)
	server := web.NewServer(books.NewService(api), loans.NewService(api), creds)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: server.Router(),
	}

	go func() {
		log.Printf("Library admin listening on port %s (api: %s)", port, apiURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown: %v", err)
	}
}

// setupTracing installs an OTLP/HTTP trace exporter when an endpoint is
// configured; without one, client spans are created but never exported.
func setupTracing(ctx context.Context) (func(), error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return func() {}, nil
	}

	exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient())
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("biblioteca-admin"),
		)),
	)
	otel.SetTracerProvider(provider)

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.Printf("Tracer shutdown: %v", err)
		}
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

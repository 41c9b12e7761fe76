// cmd/fakeapi/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"biblioteca/internal/fakeapi"
)

// fakeapi serves an in-memory rendition of the remote library system for
// local development of the admin interface.
func main() {
	port := getEnv("PORT", "8081")

	server := fakeapi.New()

	log.Printf("Fake library API listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, server.Router()))
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Command devtoken prints a bearer token accepted by the API for local use.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/business_management_app/internal/middleware"
	"github.com/SscSPs/business_management_app/internal/platform/config"
)

var (
	userID = flag.String("user", "", "User id to put in the token subject (required)")
	ttl    = flag.Duration("ttl", 24*time.Hour, "Token lifetime")
)

func main() {
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "Error: -user flag is required.")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	token, err := middleware.IssueToken(middleware.AuthConfig{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer}, *userID, *ttl)
	if err != nil {
		slog.Error("Failed to issue token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}

// Package config loads application configuration from environment
// variables.  A .env file in the working directory is applied first
// via godotenv, which keeps local development setups out of the shell
// profile.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// POS holds the runtime configuration of the point-of-sale terminal.
//
// Fields:
//  Env            – application environment (e.g. "dev", "prod").
//  APIBaseURL     – base URL of the ticketing backend, including the
//                   /api prefix.
//  RequestTimeout – timeout applied to every backend call.
//  LayoutTemplate – floor-plan template name ("split" or "modasa").
//  FloorOneSeats  – lower-floor seat count for the split template.
type POS struct {
	Env            string
	APIBaseURL     string
	RequestTimeout time.Duration
	LayoutTemplate string
	FloorOneSeats  int
}

// LoadPOS reads the terminal configuration.  Everything has a sane
// default so `pos` runs against a local backend out of the box.
func LoadPOS() POS {
	loadDotenv()
	return POS{
		Env:            getenv("APP_ENV", "dev"),
		APIBaseURL:     getenv("POS_API_URL", "http://localhost:8000/api"),
		RequestTimeout: parseDur(getenv("POS_REQUEST_TIMEOUT", "10s")),
		LayoutTemplate: getenv("BUS_LAYOUT_TEMPLATE", "split"),
		FloorOneSeats:  atoi(getenv("BUS_FLOOR1_SEATS", "12")),
	}
}

// Stub holds the configuration of the stub backend.
//
// Fields:
//  Env          – application environment.
//  Port         – HTTP port to listen on.
//  JWTSecret    – secret used to sign access tokens.
//  AccessTTLMin – access token time-to-live in minutes.
//  BcryptCost   – bcrypt cost for the seeded seller passwords.
type Stub struct {
	Env          string
	Port         string
	JWTSecret    string
	AccessTTLMin int
	BcryptCost   int
}

// LoadStub reads the stub backend configuration.  The JWT secret is
// required so a deployment cannot accidentally run with a guessable
// default; the rest falls back to development values.
func LoadStub() Stub {
	loadDotenv()
	return Stub{
		Env:          getenv("APP_ENV", "dev"),
		Port:         getenv("STUB_PORT", "8000"),
		JWTSecret:    must("STUB_JWT_SECRET"),
		AccessTTLMin: atoi(getenv("STUB_ACCESS_TTL_MIN", "480")),
		BcryptCost:   atoi(getenv("STUB_BCRYPT_COST", "10")),
	}
}

// loadDotenv applies a .env file when present.  Absence is not an
// error: production deployments configure the environment directly.
func loadDotenv() {
	_ = godotenv.Load()
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the variable's value or a default when unset.
func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// atoi converts a string to int, exiting on malformed input so a typo
// in the environment is caught at startup rather than mid-sale.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int in env: %q", s)
	}
	return n
}

// parseDur converts a duration string under the same policy as atoi.
func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("invalid duration in env: %q", s)
	}
	return d
}

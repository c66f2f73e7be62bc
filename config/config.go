package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Host           string
	Port           string
	DatabaseURL    string
	FortunesFile   string
	AllowedOrigins []string
	Seed           *uint64
}

// Addr is the host:port the server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	host := getenv("HOST")
	if host == "" {
		host = "0.0.0.0"
	}

	port := getenv("PORT")
	if port == "" {
		port = "5000" // default port
	}
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("%w: PORT must be a number between 1 and 65535, got %q", ErrInvalidConfig, port)
	}

	origins := []string{"*"}
	if raw := getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = splitList(raw)
		if len(origins) == 0 {
			return nil, fmt.Errorf("%w: CORS_ALLOWED_ORIGINS has no origins", ErrInvalidConfig)
		}
	}

	var seed *uint64
	if raw := getenv("FORTUNE_SEED"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: FORTUNE_SEED must be an unsigned integer, got %q", ErrInvalidConfig, raw)
		}
		seed = &v
	}

	return &Config{
		Host:           host,
		Port:           port,
		DatabaseURL:    getenv("DATABASE_URL"),
		FortunesFile:   getenv("FORTUNES_FILE"),
		AllowedOrigins: origins,
		Seed:           seed,
	}, nil
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

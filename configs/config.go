package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Port           string
	AllowedOrigins []string
	QueryTimeout   time.Duration
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using default config")
	}

	port := os.Getenv("PORT")
	if _, err := strconv.Atoi(port); err != nil {
		if port != "" {
			log.Printf("Invalid PORT value: %v. Using default port 8000.", port)
		}
		port = "8000"
	}

	origins := []string{"*"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	var timeout time.Duration
	if raw := os.Getenv("QUERY_TIMEOUT"); raw != "" {
		timeout, err = time.ParseDuration(raw)
		if err != nil || timeout < 0 {
			log.Printf("Invalid QUERY_TIMEOUT value: %v. Query timeout disabled.", raw)
			timeout = 0
		}
	}

	return &Config{
		Port:           port,
		AllowedOrigins: origins,
		QueryTimeout:   timeout,
	}
}

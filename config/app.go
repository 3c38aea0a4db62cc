package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName         string
	Port            string
	Env             string
	Debug           bool
	MediaUrl        string
	DefaultPageSize int
	MaxPageSize     int
	SuggestLimit    int
	SearchTimeout   time.Duration
	// Add more fields as needed
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:         os.Getenv("APP_NAME"),
			Port:            os.Getenv("PORT"),
			Env:             os.Getenv("APP_ENV"),
			Debug:           os.Getenv("DEBUG") == "true",
			MediaUrl:        GetEnv("MEDIA_URL", "/media/catalog/product/"),
			DefaultPageSize: envInt("SEARCH_DEFAULT_PAGE_SIZE", 20),
			MaxPageSize:     envInt("SEARCH_MAX_PAGE_SIZE", 100),
			SuggestLimit:    envInt("SUGGEST_MAX_LIMIT", 10),
			SearchTimeout:   time.Duration(envInt("SEARCH_TIMEOUT_MS", 5000)) * time.Millisecond,
		}
	})
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIURL       string
	ResourceID   string
	RecordLimit  int
	FetchTimeout time.Duration
	ListenAddr   string
	TgToken      string
	TgChatID     int64
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration. A missing .env file is not
// an error; every key has a default except the Telegram credentials, which
// stay empty and disable the notifier.
func GetConfig() *Config {
	once.Do(func() {
		_ = godotenv.Load()

		config = &Config{
			APIURL:       getenv("API_URL", "https://datos.gob.cl/api/3/action/datastore_search"),
			ResourceID:   getenv("RESOURCE_ID", "ecc2be79-efc6-47c3-91c9-38df96fc0b06"),
			RecordLimit:  getenvInt("RECORD_LIMIT", 5000),
			FetchTimeout: time.Duration(getenvInt("FETCH_TIMEOUT", 30)) * time.Second,
			ListenAddr:   getenv("LISTEN_ADDR", ":8005"),
			TgToken:      os.Getenv("TG_TOKEN"),
			TgChatID:     getenvInt64("TG_CHAT_ID", 0),
		}
	})
	return config
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

package internal

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DataDir        string
	LogPath        string
	UploadDir      string
	FrontendDir    string
	AdminSecret    string
	APIToken       string
	TelegramToken  string
	TelegramChatID int64
}

func LoadConfig() *Config {
	_ = godotenv.Load() // ignore error if .env is absent

	dataDir := getenvDefault("DATA_DIR", "data")

	cfg := &Config{
		Port:          getenvDefault("PORT", "4000"),
		DataDir:       dataDir,
		LogPath:       getenvDefault("LOG_PATH", filepath.Join(dataDir, "requests.log")),
		UploadDir:     getenvDefault("UPLOAD_DIR", filepath.Join(dataDir, "uploads")),
		FrontendDir:   getenvDefault("FRONTEND_DIR", "frontend"),
		AdminSecret:   os.Getenv("ADMIN_SECRET"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
	}
	cfg.APIToken = getenvDefault("API_TOKEN", cfg.AdminSecret)

	if cfg.AdminSecret == "" {
		log.Fatal("ADMIN_SECRET must be set")
	}

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatalf("TELEGRAM_CHAT_ID is not a number: %v", err)
		}
		cfg.TelegramChatID = id
	}

	return cfg
}

func getenvDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

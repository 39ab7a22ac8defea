package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	AdminEmail    string
	AdminPassword string

	CORSOrigins []string
	UploadDir   string

	GatewayBaseURL string
	GatewayKey     string
	GatewaySecret  string
}

func LoadConfig() *Config {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:      getEnv("PORT", "8000"),
		DBSource:  getEnv("DB_SOURCE", "thali.db"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    90 * 24 * time.Hour,

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ","),
		UploadDir:   getEnv("UPLOAD_DIR", "./uploads"),

		GatewayBaseURL: getEnv("RAZORPAY_BASE_URL", "https://api.razorpay.com"),
		GatewayKey:     os.Getenv("RAZORPAY_KEY"),
		GatewaySecret:  os.Getenv("RAZORPAY_SECRET"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

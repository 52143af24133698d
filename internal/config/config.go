package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	Issuer     string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	LogLevel   string

	// AllowedOrigins are CORS origin prefixes; "*" allows any origin.
	AllowedOrigins = []string{"http://localhost:", "http://127.0.0.1:"}

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	ViewCountTTL  = 5 * time.Minute

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	// ObjectSweepInterval is how often stored objects of deleted projects are
	// swept. Zero disables the sweep.
	ObjectSweepInterval = 24 * time.Hour

	// ReportRequiresAcceptedPlan rejects report creation until the plan is accepted.
	ReportRequiresAcceptedPlan = true
	// LegacyEmptyMembershipGrants restores the old rule where a project without
	// loaded members is editable by anyone.
	LegacyEmptyMembershipGrants = false

	AdminRole = "admin"
	UserRole  = "user"
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "project-review")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "project_review")
	ServerPort = getEnv("SERVER_PORT", "8080")
	LogLevel = getEnv("LOG_LEVEL", "info")
	if origins := getEnv("ALLOWED_ORIGINS", ""); origins != "" {
		AllowedOrigins = strings.Split(origins, ",")
	}

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB = getEnvInt("REDIS_DB", 0)
	ViewCountTTL = time.Duration(getEnvInt("VIEW_COUNT_TTL_SECONDS", 300)) * time.Second

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "project-review")
	MinioUseSSL = getEnvBool("MINIO_USE_SSL", false)
	ObjectSweepInterval = time.Duration(getEnvInt("OBJECT_SWEEP_INTERVAL_MINUTES", 24*60)) * time.Minute

	ReportRequiresAcceptedPlan = getEnvBool("REPORT_REQUIRES_ACCEPTED_PLAN", true)
	LegacyEmptyMembershipGrants = getEnvBool("LEGACY_EMPTY_MEMBERSHIP_GRANTS", false)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr          string
	GinMode          string
	DBDSN            string
	JWTSecret        string
	JWTTTL           time.Duration
	CORSOrigins      []string
	LogoFetchTimeout time.Duration
	ReceiptConfig    string
	MetricsEnabled   bool
}

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// LoadEnv reads .env (if present) and the process environment. Malformed
// numeric values are reported instead of falling back silently.
func LoadEnv() (Env, error) {
	_ = godotenv.Load()

	env := Env{
		AppAddr:       getenvDefault("APP_ADDR", ":8080"),
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
		ReceiptConfig: strings.TrimSpace(os.Getenv("RECEIPT_CONFIG")),
		CORSOrigins:   defaultCORSOrigins,
	}

	env.DBDSN = strings.TrimSpace(os.Getenv("DB_DSN"))
	if env.DBDSN == "" {
		env.DBDSN = fmt.Sprintf("%s:%s@tcp(%s)/%s",
			getenvDefault("DB_USER", "root"),
			os.Getenv("DB_PASSWORD"),
			getenvDefault("DB_HOST", "127.0.0.1:3306"),
			getenvDefault("DB_NAME", "excursions"),
		)
	}
	if !strings.Contains(env.DBDSN, "?") {
		env.DBDSN += "?parseTime=false&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	if env.JWTSecret == "" {
		if env.GinMode == "release" {
			return Env{}, fmt.Errorf("JWT_SECRET wajib diisi pada GIN_MODE=release")
		}
		env.JWTSecret = "dev-secret-change-me"
	}

	hours, err := intEnv("JWT_TTL_HOURS", 24)
	if err != nil {
		return Env{}, err
	}
	env.JWTTTL = time.Duration(hours) * time.Hour

	ms, err := intEnv("LOGO_FETCH_TIMEOUT_MS", 3000)
	if err != nil {
		return Env{}, err
	}
	env.LogoFetchTimeout = time.Duration(ms) * time.Millisecond

	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		env.CORSOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	}

	env.MetricsEnabled = true
	if v := strings.TrimSpace(os.Getenv("METRICS_ENABLED")); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "t", "yes", "y", "on":
			env.MetricsEnabled = true
		case "0", "false", "f", "no", "n", "off":
			env.MetricsEnabled = false
		default:
			return Env{}, fmt.Errorf("invalid METRICS_ENABLED: %q", v)
		}
	}

	return env, nil
}

func getenvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func intEnv(k string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", k, v)
	}
	return n, nil
}

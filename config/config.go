package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backend names accepted in STORE_BACKEND.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

type Config struct {
	Port           string
	Debug          bool
	StoreBackend   string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisPrefix    string
	MongoURI       string
	MongoDB        string
	JWTSecret      []byte
	ReceiptSecret  []byte
	WhatsAppNumber string
	UploadDir      string
	LoginDelay     time.Duration
	AllowedOrigins []string
}

// Load reads .env when present and then the process environment. It reports
// whether a .env file was found.
func Load() (Config, bool) {
	envFile := godotenv.Load() == nil
	return FromEnv(os.Getenv), envFile
}

// FromEnv builds a Config from a lookup function, applying defaults.
func FromEnv(getenv func(string) string) Config {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	port := get("PORT", ":8080")
	if port[0] != ':' {
		port = ":" + port
	}

	redisDB, err := strconv.Atoi(get("REDIS_DB", "0"))
	if err != nil {
		redisDB = 0
	}
	delay, err := time.ParseDuration(get("LOGIN_DELAY", "800ms"))
	if err != nil {
		delay = 800 * time.Millisecond
	}
	debug, _ := strconv.ParseBool(get("DEBUG", "false"))

	var origins []string
	for _, o := range strings.Split(get("ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		Port:           port,
		Debug:          debug,
		StoreBackend:   strings.ToLower(get("STORE_BACKEND", BackendMemory)),
		RedisAddr:      get("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		RedisPrefix:    get("REDIS_PREFIX", "tourcab"),
		MongoURI:       get("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        get("MONGO_DB", "tourcab"),
		JWTSecret:      []byte(get("JWT_SECRET", "change-me-jwt")),
		ReceiptSecret:  []byte(get("RECEIPT_SECRET", "change-me-receipt")),
		WhatsAppNumber: get("WHATSAPP_NUMBER", "919876543210"),
		UploadDir:      get("UPLOAD_DIR", "static/uploads"),
		LoginDelay:     delay,
		AllowedOrigins: origins,
	}
}

package main

import (
	"context"
	"expvar"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/Abdulllah321/sports-landing-sub001/internal/cache"
	"github.com/Abdulllah321/sports-landing-sub001/internal/db"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/storage"
	"github.com/Abdulllah321/sports-landing-sub001/internal/ratelimiter"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	// Default values
	defaultRequests := 200
	defaultBurst := 0 // same as the request count
	defaultEnabled := false

	// Retrieve request count with error handling
	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	burst := defaultBurst
	if val, exists := os.LookupEnv("RATELIMITER_BURST"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			burst = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_BURST, defaulting to", requestsPerTimeFrame)
		}
	}

	// Retrieve enabled flag with error handling
	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		Burst:                burst,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		fmt.Printf("Invalid %s, defaulting to %d\n", key, fallback)
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		fmt.Printf("Invalid %s, defaulting to %s\n", key, fallback)
		return fallback
	}
	return parsed
}

func loadConfig() config {
	return config{
		addr:       getEnv("ADDR", ":8080"),
		env:        getEnv("ENV", "development"),
		dataSource: getEnv("DATA_SOURCE", storage.BackendMemory),
		db: dbConfig{
			addr:        os.Getenv("DB_ADDR"),
			maxConns:    int32(getEnvInt("DB_MAX_CONNS", 10)),
			maxIdleTime: getEnv("DB_MAX_IDLE_TIME", "15m"),
		},
		redis: redisConfig{
			addr:     os.Getenv("REDIS_ADDR"),
			password: os.Getenv("REDIS_PASSWORD"),
			db:       getEnvInt("REDIS_DB", 0),
			ttl:      getEnvDuration("CACHE_TTL", 30*time.Second),
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
		},
		rateLimiter: LoadRateLimiterConfig(),
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	// Configure the encoder to be a console encoder with color
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder // This adds color to log levels (INFO, WARN, ERROR)

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

var version = "0.3.0"

func main() {
	// Logger
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// settings may come straight from the environment
	if err := godotenv.Load(); err != nil {
		logger.Warnw("no .env file loaded", "error", err)
	}

	cfg := loadConfig()

	// Storage
	var store *storage.Container
	switch cfg.dataSource {
	case storage.BackendPostgres:
		pool, err := db.New(db.Config{
			Addr:        cfg.db.addr,
			MaxConns:    cfg.db.maxConns,
			MaxIdleTime: cfg.db.maxIdleTime,
		})
		if err != nil {
			logger.Fatal(err)
		}
		defer pool.Close()
		logger.Info("database connection pool established")

		expvar.Publish("database", expvar.Func(func() any {
			return pool.Stat().TotalConns()
		}))

		store = storage.NewPostgresContainer(pool)
		seeded, err := store.Migrate(context.Background())
		if err != nil {
			logger.Fatal(err)
		}
		logger.Infow("catalog schema ready", "seeded", seeded)
	case storage.BackendMemory:
		store = storage.NewMemoryContainer()
		logger.Info("serving the in-memory demo catalog")
	default:
		logger.Fatalf("unknown DATA_SOURCE %q", cfg.dataSource)
	}

	// Cache
	if cfg.redis.addr != "" {
		rdb, err := cache.NewClient(context.Background(), cache.Config{
			Addr:     cfg.redis.addr,
			Password: cfg.redis.password,
			DB:       cfg.redis.db,
			TTL:      cfg.redis.ttl,
		})
		if err != nil {
			logger.Fatal(err)
		}
		defer rdb.Close()
		store.WithCache(rdb, cfg.redis.ttl, logger)
		logger.Infow("redis snapshot cache enabled", "addr", cfg.redis.addr, "ttl", cfg.redis.ttl)
	}

	// Rate limiter
	rateLimiter := ratelimiter.NewTokenBucketLimiter(cfg.rateLimiter)
	stop := make(chan struct{})
	defer close(stop)
	go rateLimiter.Run(time.Minute, stop)

	app := newApplication(cfg, store, logger, rateLimiter)

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}

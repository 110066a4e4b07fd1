package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/snake-arena/internal/executor"
	"github.com/sbilibin2017/snake-arena/internal/facades"
	"github.com/sbilibin2017/snake-arena/internal/handlers"
	"github.com/sbilibin2017/snake-arena/internal/jwt"
	"github.com/sbilibin2017/snake-arena/internal/logger"
	"github.com/sbilibin2017/snake-arena/internal/migrations"
	"github.com/sbilibin2017/snake-arena/internal/repositories"
	"github.com/sbilibin2017/snake-arena/internal/server"
	"github.com/sbilibin2017/snake-arena/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Score event sinks.
const (
	sinkNone  = "none"
	sinkKafka = "kafka"
	sinkRedis = "redis"
)

// config holds every setting read from the environment.
type config struct {
	appHost, appPort string
	logLevel         string
	logFormat        string
	idleTimeout      time.Duration
	maxLineBytes     int
	healthAddr       string

	dbDriver        string
	dbDSN           string
	dbAutoMigrate   bool
	dbRetryAttempts int
	dbRetryDelay    time.Duration

	jwtSecretKey string
	jwtExp       time.Duration

	eventsSink   string
	kafkaBrokers []string
	kafkaTopic   string

	redisHost     string
	redisPort     int
	redisDB       int
	redisPassword string
	redisChannel  string
}

func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// server, storage, JWT and event sink configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "127.0.0.1")
	cfg.appPort = getEnv("APP_PORT", "5050")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.logFormat = getEnv("APP_LOG_FORMAT", logger.FormatJSON)
	idleSeconds, err := strconv.Atoi(getEnv("APP_IDLE_TIMEOUT_SECOND", "0"))
	if err != nil {
		return cfg, fmt.Errorf("APP_IDLE_TIMEOUT_SECOND: %w", err)
	}
	cfg.idleTimeout = time.Duration(idleSeconds) * time.Second
	if cfg.maxLineBytes, err = strconv.Atoi(getEnv("APP_MAX_LINE_BYTES", strconv.Itoa(server.DefaultMaxLineBytes))); err != nil {
		return cfg, fmt.Errorf("APP_MAX_LINE_BYTES: %w", err)
	}
	cfg.healthAddr = getEnv("HEALTH_ADDR", "")

	// Storage config
	cfg.dbDriver = getEnv("DB_DRIVER", executor.DriverSQLite)
	cfg.dbDSN = getEnv("DB_DSN", "snake_game.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(0)")
	if cfg.dbAutoMigrate, err = strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "true")); err != nil {
		return cfg, fmt.Errorf("DB_AUTO_MIGRATE: %w", err)
	}
	if cfg.dbRetryAttempts, err = strconv.Atoi(getEnv("DB_RETRY_ATTEMPTS", strconv.Itoa(executor.DefaultAttempts))); err != nil {
		return cfg, fmt.Errorf("DB_RETRY_ATTEMPTS: %w", err)
	}
	retryMs, err := strconv.Atoi(getEnv("DB_RETRY_DELAY_MS", "500"))
	if err != nil {
		return cfg, fmt.Errorf("DB_RETRY_DELAY_MS: %w", err)
	}
	cfg.dbRetryDelay = time.Duration(retryMs) * time.Millisecond

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "supersecretkey")
	jwtExpSecond, err := strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600"))
	if err != nil {
		return cfg, fmt.Errorf("JWT_EXP_SECOND: %w", err)
	}
	cfg.jwtExp = time.Duration(jwtExpSecond) * time.Second

	// Score events config
	cfg.eventsSink = getEnv("EVENTS_SINK", sinkNone)
	cfg.kafkaBrokers = strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "score-events")

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return cfg, fmt.Errorf("REDIS_PORT: %w", err)
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return cfg, fmt.Errorf("REDIS_DB: %w", err)
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.redisChannel = getEnv("REDIS_CHANNEL", "score-events")

	return cfg, nil
}

// newScorePublisher builds the configured score event sink and its cleanup func.
// The "none" sink returns a nil publisher.
func newScorePublisher(ctx context.Context, cfg config) (services.ScorePublisher, func() error, error) {
	noop := func() error { return nil }

	switch cfg.eventsSink {
	case sinkNone, "":
		return nil, noop, nil

	case sinkKafka:
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.kafkaBrokers...),
			Topic:                  cfg.kafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		logger.Log.Infof("Publishing score events to Kafka topic %s", cfg.kafkaTopic)
		return facades.NewScoreEventsKafkaFacade(w), w.Close, nil

	case sinkRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.redisHost, strconv.Itoa(cfg.redisPort)),
			Password: cfg.redisPassword,
			DB:       cfg.redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, noop, fmt.Errorf("redis connection error: %w", err)
		}
		logger.Log.Infof("Publishing score events to Redis channel %s", cfg.redisChannel)
		return facades.NewScoreEventsRedisFacade(rdb, cfg.redisChannel), rdb.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown events sink %q", cfg.eventsSink)
	}
}

// run initializes the logger, storage, event sink and servers, and blocks
// until ctx is cancelled or a signal arrives.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel, cfg.logFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Open storage
	logger.Log.Infow("Opening storage", "driver", cfg.dbDriver)
	db, err := executor.Open(ctx, cfg.dbDriver, cfg.dbDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.dbAutoMigrate {
		if err := migrations.Up(ctx, db.DB, cfg.dbDriver); err != nil {
			return err
		}
	}

	exec := executor.New(db, executor.WithRetry(cfg.dbRetryAttempts, cfg.dbRetryDelay))

	// Score event sink
	publisher, closePublisher, err := newScorePublisher(ctx, cfg)
	if err != nil {
		return err
	}
	defer closePublisher()

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.jwtSecretKey), jwt.WithExpiration(cfg.jwtExp))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(exec)
	userWriteRepo := repositories.NewUserWriteRepository(exec)
	scoreReadRepo := repositories.NewScoreReadRepository(exec)
	scoreWriteRepo := repositories.NewScoreWriteRepository(exec)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	scoreService := services.NewScoreService(scoreReadRepo, scoreWriteRepo, publisher)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, scoreReadRepo)

	// Setup router
	router := handlers.NewRouter(authService, scoreService, profileService, tokens)

	srv := server.New(
		net.JoinHostPort(cfg.appHost, cfg.appPort),
		router,
		server.WithIdleTimeout(cfg.idleTimeout),
		server.WithMaxLineBytes(cfg.maxLineBytes),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(gctx)
	})
	if cfg.healthAddr != "" {
		g.Go(func() error {
			return server.RunHealthServer(gctx, cfg.healthAddr, exec)
		})
	}

	return g.Wait()
}

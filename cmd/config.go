package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pod/internal/adapters/out/s3"
	"pod/internal/jobs"
)

// Report stores selectable with REPORT_STORE.
const (
	ReportStorePostgres = "postgres"
	ReportStoreMongo    = "mongo"
)

const (
	defaultHTTPPort          = "5000"
	defaultJWTTTL            = 24 * time.Hour
	defaultMongoDatabase     = "pod"
	defaultSeedAdminPassword = "admin123"
)

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	JWTSecret         string
	JWTTTL            time.Duration
	ReportStore       string
	MongoURI          string
	MongoDatabase     string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	S3                s3.Config
	DSRCron           string
	SeedAdminPassword string
}

// LoadConfig reads the configuration through getenv, usually os.Getenv after
// godotenv has loaded .env. Unset optional keys get their defaults.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:          withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:            getenv("DB_HOST"),
		DBPort:            withDefault(getenv("DB_PORT"), "5432"),
		DBUser:            getenv("DB_USER"),
		DBPassword:        getenv("DB_PASSWORD"),
		DBName:            getenv("DB_NAME"),
		DBSslMode:         withDefault(getenv("DB_SSLMODE"), "disable"),
		JWTSecret:         getenv("JWT_SECRET"),
		JWTTTL:            defaultJWTTTL,
		ReportStore:       strings.ToLower(withDefault(getenv("REPORT_STORE"), ReportStorePostgres)),
		MongoURI:          getenv("MONGODB_URI"),
		MongoDatabase:     withDefault(getenv("MONGODB_DATABASE"), defaultMongoDatabase),
		RedisAddr:         getenv("REDIS_ADDR"),
		RedisPassword:     getenv("REDIS_PASSWORD"),
		DSRCron:           withDefault(getenv("DSR_CRON"), jobs.DefaultDailyReportSchedule),
		SeedAdminPassword: withDefault(getenv("SEED_ADMIN_PASSWORD"), defaultSeedAdminPassword),
		S3: s3.Config{
			Bucket:    getenv("S3_BUCKET"),
			Endpoint:  getenv("S3_ENDPOINT"),
			Region:    withDefault(getenv("S3_REGION"), "us-east-1"),
			AccessKey: getenv("S3_ACCESS_KEY"),
			SecretKey: getenv("S3_SECRET_KEY"),
		},
	}

	var err error
	if raw := getenv("JWT_TTL"); raw != "" {
		ttl, parseErr := time.ParseDuration(raw)
		if parseErr != nil || ttl <= 0 {
			err = errors.Join(err, fmt.Errorf("JWT_TTL: %q is not a positive duration", raw))
		}
		cfg.JWTTTL = ttl
	}
	if raw := getenv("REDIS_DB"); raw != "" {
		db, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			err = errors.Join(err, fmt.Errorf("REDIS_DB: %w", parseErr))
		}
		cfg.RedisDB = db
	}

	return cfg, errors.Join(err, cfg.Validate())
}

// Validate checks the keys every binary needs.
func (c Config) Validate() error {
	var err error
	if c.DBHost == "" {
		err = errors.Join(err, errors.New("DB_HOST is required"))
	}
	if c.DBUser == "" {
		err = errors.Join(err, errors.New("DB_USER is required"))
	}
	if c.DBName == "" {
		err = errors.Join(err, errors.New("DB_NAME is required"))
	}
	switch c.ReportStore {
	case ReportStorePostgres:
	case ReportStoreMongo:
		if c.MongoURI == "" {
			err = errors.Join(err, errors.New("MONGODB_URI is required when REPORT_STORE=mongo"))
		}
	default:
		err = errors.Join(err, fmt.Errorf("REPORT_STORE: %q is neither %s nor %s", c.ReportStore, ReportStorePostgres, ReportStoreMongo))
	}
	return err
}

// DSN is the PostgreSQL connection string for GORM and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

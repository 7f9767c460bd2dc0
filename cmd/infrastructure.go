package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pod/internal/adapters/out/s3"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const connectTimeout = 10 * time.Second

// Infrastructure holds the storage handles the application runs on. DB is
// required; a nil optional handle selects the fallback adapter for its concern.
type Infrastructure struct {
	DB    *gorm.DB
	Mongo *mongo.Client
	Redis goredis.UniversalClient
	S3    *awss3.Client
}

// Open connects to every store cfg enables. On failure the handles opened so
// far are closed.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (Infrastructure, error) {
	var infra Infrastructure

	db, err := OpenPostgres(cfg)
	if err != nil {
		return infra, err
	}
	infra.DB = db

	if cfg.ReportStore == ReportStoreMongo {
		if infra.Mongo, err = connectMongo(ctx, cfg.MongoURI); err != nil {
			return infra, errors.Join(err, infra.Close(ctx))
		}
		logger.InfoContext(ctx, "Connected to MongoDB", "database", cfg.MongoDatabase)
	}

	if cfg.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		if err = client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return infra, errors.Join(fmt.Errorf("ping redis: %w", err), infra.Close(ctx))
		}
		infra.Redis = client
		logger.InfoContext(ctx, "Connected to Redis", "addr", cfg.RedisAddr)
	} else {
		logger.InfoContext(ctx, "REDIS_ADDR not set, delivery events are not published")
	}

	if cfg.S3.Enabled() {
		if infra.S3, err = s3.NewClient(ctx, cfg.S3); err != nil {
			return infra, errors.Join(fmt.Errorf("configure s3: %w", err), infra.Close(ctx))
		}
		logger.InfoContext(ctx, "Proof images stored in S3", "bucket", cfg.S3.Bucket)
	} else {
		logger.InfoContext(ctx, "S3_BUCKET not set, proof images are stored inline")
	}

	return infra, nil
}

// OpenPostgres connects GORM to the configured database.
func OpenPostgres(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

func connectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err = client.Ping(pingCtx, nil); err != nil {
		return nil, errors.Join(fmt.Errorf("ping mongodb: %w", err), client.Disconnect(ctx))
	}
	return client, nil
}

// Close releases every open handle.
func (i Infrastructure) Close(ctx context.Context) error {
	var err error
	if i.Redis != nil {
		err = errors.Join(err, i.Redis.Close())
	}
	if i.Mongo != nil {
		err = errors.Join(err, i.Mongo.Disconnect(ctx))
	}
	if i.DB != nil {
		sqlDB, dbErr := i.DB.DB()
		if dbErr != nil {
			return errors.Join(err, dbErr)
		}
		err = errors.Join(err, sqlDB.Close())
	}
	return err
}

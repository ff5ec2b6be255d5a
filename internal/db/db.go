package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	Addr        string
	MaxConns    int32
	MaxIdleTime string
}

// New sets up a new pgx connection pool
func New(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.Addr)
	if err != nil {
		return nil, err
	}

	if cfg.MaxConns > 0 {
		config.MaxConns = cfg.MaxConns
	}

	if cfg.MaxIdleTime != "" {
		duration, err := time.ParseDuration(cfg.MaxIdleTime)
		if err != nil {
			return nil, err
		}
		config.MaxConnIdleTime = duration
	}

	// applies to pool start-up including the first Ping
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbpool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}

	return dbpool, nil
}

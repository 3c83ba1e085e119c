package config

import (
	"context"
	"database/sql"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	PostgresDB     *sql.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	err := b.Redis.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	err = b.PostgresDB.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Postgres")

	_ = b.Logger.Sync()
	log.Println("Successfully flushed Logger")

	return nil
}

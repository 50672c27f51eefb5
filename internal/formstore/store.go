package formstore

import (
	"context"
	"fmt"
	"time"

	"github.com/iwvelando/lease-fees/internal/config"
	"github.com/iwvelando/lease-fees/pkg/constants"
	"github.com/iwvelando/lease-fees/pkg/fees"
	"go.uber.org/zap"
)

// Store keeps one FormState per calculator.
type Store interface {
	Load(ctx context.Context, kind fees.Kind) (FormState, error)
	Save(ctx context.Context, state FormState) (FormState, error)
	Delete(ctx context.Context, kind fees.Kind) error
	Close() error
}

// Open returns the store selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Driver {
	case "", constants.StoreDriverMemory:
		logger.Debug("using in-memory form store")
		return NewMemoryStore(), nil
	case constants.StoreDriverSQLite:
		logger.Debug("opening sqlite form store", zap.String("path", cfg.Path))
		store, err := OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case constants.StoreDriverRedis:
		logger.Debug("connecting to redis form store",
			zap.String("addr", cfg.RedisAddr),
			zap.Int("db", cfg.RedisDB),
		)
		store, err := OpenRedis(ctx, RedisOptions{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.KeyPrefix,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
}

func checkKind(kind fees.Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("invalid calculator %q", kind)
	}
	return nil
}

var now = time.Now

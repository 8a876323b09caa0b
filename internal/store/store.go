package store

import (
	pgstore "github.com/synzk/hub-backend/internal/store/postgres"
	"github.com/synzk/hub-backend/internal/store/swapstore"
	"github.com/synzk/hub-backend/internal/utils/config"
	"github.com/synzk/hub-backend/internal/utils/logger"
)

type Store struct {
	Swap swapstore.IStore
}

// New selects the persistence backend once at startup. Without DATABASE_URL
// the service runs on the in-memory store and records do not survive a
// restart.
func New(appConfig *config.AppConfig, logger *logger.Logger) (*Store, error) {
	if appConfig.Postgres.URL == "" {
		logger.Warn("DATABASE_URL not set, using in-memory store (non-persistent)")
		return &Store{Swap: swapstore.NewMemory()}, nil
	}

	db, err := pgstore.New(appConfig)
	if err != nil {
		return nil, err
	}

	swaps, err := swapstore.NewPostgres(db)
	if err != nil {
		return nil, err
	}

	logger.Info("postgres ready")
	return &Store{Swap: swaps}, nil
}

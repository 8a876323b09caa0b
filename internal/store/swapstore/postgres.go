package swapstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/synzk/hub-backend/internal/model"
)

type pgStore struct {
	db *gorm.DB
}

// NewPostgres ensures the swaps table exists and returns the durable store.
func NewPostgres(db *gorm.DB) (IStore, error) {
	if err := db.AutoMigrate(&model.Swap{}); err != nil {
		return nil, errors.Wrap(err, "migrate swaps table")
	}
	return &pgStore{db: db}, nil
}

func (s *pgStore) Upsert(swap *model.Swap) error {
	if !swap.Status.Valid() {
		return errors.Errorf("invalid swap status %q", swap.Status)
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at", "body"}),
	}).Create(swap).Error
}

func (s *pgStore) GetByID(id string) (*model.Swap, error) {
	var swap model.Swap
	err := s.db.Where("id = ?", id).First(&swap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &swap, nil
}

func (s *pgStore) List(limit int) ([]model.Swap, error) {
	swaps := []model.Swap{}
	err := s.db.
		Order("created_at DESC, id ASC").
		Limit(clampLimit(limit)).
		Find(&swaps).Error
	if err != nil {
		return nil, err
	}
	return swaps, nil
}

func (s *pgStore) SetStatus(id string, status model.SwapStatus) error {
	if !status.Valid() {
		return errors.Errorf("invalid swap status %q", status)
	}

	// Zero affected rows means the id is unknown; that is not an error.
	return s.db.Model(&model.Swap{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).Error
}

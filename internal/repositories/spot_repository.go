package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripsmith/internal/models/db_models"
	"tripsmith/internal/models/response_models"
)

// DefaultSpotPageSize bounds every district lookup.
const DefaultSpotPageSize = 50

// spotPlanningColumns are the only columns the planning pipeline reads.
var spotPlanningColumns = []string{"id", "name", "type", "address", "district", "city", "province", "grade", "image_urls"}

type SpotRepository interface {
	// FindByDistricts returns at most the configured page size of spots whose
	// district exactly matches one of names. Callers keep names non-empty and
	// capped at 10 entries.
	FindByDistricts(ctx context.Context, names []string) ([]response_models.TouristSpot, error)

	List(ctx context.Context, limit int) ([]db_models.TouristSpot, error)
	GetByID(ctx context.Context, id string) (*db_models.TouristSpot, error)
	UpsertBatch(ctx context.Context, spots []db_models.TouristSpot) error
}

type spotRepository struct {
	db       *gorm.DB
	pageSize int
}

func NewSpotRepository(db *gorm.DB, pageSize int) SpotRepository {
	if pageSize <= 0 {
		pageSize = DefaultSpotPageSize
	}
	return &spotRepository{db: db, pageSize: pageSize}
}

func (r *spotRepository) FindByDistricts(ctx context.Context, names []string) ([]response_models.TouristSpot, error) {
	var rows []db_models.TouristSpot

	err := r.db.WithContext(ctx).
		Select(spotPlanningColumns).
		Where("district IN ?", names).
		Limit(r.pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	spots := make([]response_models.TouristSpot, 0, len(rows))
	for _, row := range rows {
		spots = append(spots, row.ToResponse())
	}
	return spots, nil
}

func (r *spotRepository) List(ctx context.Context, limit int) ([]db_models.TouristSpot, error) {
	var rows []db_models.TouristSpot

	err := r.db.WithContext(ctx).
		Order("name").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID returns nil, nil when no row matches.
func (r *spotRepository) GetByID(ctx context.Context, id string) (*db_models.TouristSpot, error) {
	var spot db_models.TouristSpot

	err := r.db.WithContext(ctx).First(&spot, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &spot, nil
}

// UpsertBatch inserts spots keyed by slug; re-ingesting a record overwrites it.
func (r *spotRepository) UpsertBatch(ctx context.Context, spots []db_models.TouristSpot) error {
	if len(spots) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "type", "address", "district", "city", "province", "grade",
				"aga_division", "local_authority", "source_file", "image_urls", "updated_at",
			}),
		}).Create(&spots).Error
	})
}

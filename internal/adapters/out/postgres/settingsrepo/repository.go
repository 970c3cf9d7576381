package settingsrepo

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/schedule"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStoreSettingsRepository implements ports.StoreSettingsRepository
// using GORM. Settings are a per-store value object, not an aggregate, so
// there is no tracking.
type GormStoreSettingsRepository struct {
	db *gorm.DB
}

// NewGormStoreSettingsRepository creates a new GORM settings repository.
func NewGormStoreSettingsRepository(db *gorm.DB) *GormStoreSettingsRepository {
	return &GormStoreSettingsRepository{db: db}
}

// Get retrieves the calendar settings for a store. A store with no row
// returns an ObjectNotFoundError; callers fall back to the default
// calendar.
func (r *GormStoreSettingsRepository) Get(ctx context.Context, store order.Store) (schedule.CalendarSettings, error) {
	if err := store.Validate(); err != nil {
		return schedule.CalendarSettings{}, err
	}

	var dto SettingsDTO
	if err := r.db.WithContext(ctx).First(&dto, "store = ?", store.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return schedule.CalendarSettings{}, errs.NewObjectNotFoundError("store settings", store.String())
		}
		return schedule.CalendarSettings{}, err
	}

	return toDomain(dto)
}

// Save creates or replaces the calendar settings for a store.
func (r *GormStoreSettingsRepository) Save(ctx context.Context, store order.Store, settings schedule.CalendarSettings) error {
	if err := store.Validate(); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	dto := fromDomain(store.String(), settings)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "store"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

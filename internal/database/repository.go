package database

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/xfocus/xfocus/internal/models"
)

// Repository handles all database operations for focus samples
type Repository struct {
	db *DB
}

// NewRepository creates a new repository instance
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new focus sample. Application names are stored lowercased
// so that "Firefox" and "firefox" aggregate together.
// Timestamps are stored in UTC; sqlite compares them as text.
func (r *Repository) Create(sample *models.FocusSample) error {
	sample.AppName = strings.ToLower(sample.AppName)
	sample.Timestamp = sample.Timestamp.UTC()
	if err := r.db.Create(sample).Error; err != nil {
		return errors.Wrap(err, "failed to insert focus sample")
	}
	return nil
}

// GetByID retrieves a focus sample by its ID
func (r *Repository) GetByID(id uint) (*models.FocusSample, error) {
	var sample models.FocusSample
	result := r.db.First(&sample, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, errors.Wrap(result.Error, "failed to get focus sample")
	}
	return &sample, nil
}

// GetEventsSince retrieves all samples since a given time, oldest first
func (r *Repository) GetEventsSince(since time.Time) ([]*models.FocusSample, error) {
	var samples []*models.FocusSample
	result := r.db.Where("timestamp >= ?", since.UTC()).Order("timestamp ASC").Find(&samples)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to query focus samples")
	}
	return samples, nil
}

// GetAppSummarySince returns per-application totals since a given time
func (r *Repository) GetAppSummarySince(since time.Time) ([]models.AppSummary, error) {
	var summaries []models.AppSummary

	result := r.db.Model(&models.FocusSample{}).
		Select("app_name, SUM(duration) as total_seconds, COUNT(*) as sample_count").
		Where("timestamp >= ?", since.UTC()).
		Group("app_name").
		Order("total_seconds DESC").
		Scan(&summaries)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to query app summary")
	}

	return summaries, nil
}

// DeleteOldEvents soft-deletes samples older than before
func (r *Repository) DeleteOldEvents(before time.Time) (int64, error) {
	result := r.db.Where("timestamp < ?", before.UTC()).Delete(&models.FocusSample{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete old samples")
	}
	return result.RowsAffected, nil
}

// GetLatest retrieves the most recent sample, or nil when there is none
func (r *Repository) GetLatest() (*models.FocusSample, error) {
	var sample models.FocusSample
	result := r.db.Order("timestamp DESC").First(&sample)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(result.Error, "failed to get latest sample")
	}
	return &sample, nil
}

// Clear removes all focus samples
func (r *Repository) Clear() error {
	if err := r.db.Exec("DELETE FROM focus_samples").Error; err != nil {
		return errors.Wrap(err, "failed to clear focus samples")
	}
	return nil
}

package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/verifica-mx/campaign-verifier/internal/apperrors"
	"github.com/verifica-mx/campaign-verifier/internal/models"
)

// CampaignStore is the record store contract. All reads are independently
// eventually consistent with the latest successful Insert; nothing here
// spans a transaction with the blob upload that precedes Insert.
type CampaignStore interface {
	// Insert persists a fully-populated record whose StoragePath already
	// references a stored blob. A duplicate ID yields a ConflictError,
	// any other failure a TransientError.
	Insert(ctx context.Context, c *models.Campaign) error
	// GetByID is an exact-match lookup; a miss yields apperrors.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Campaign, error)
	// SearchByIDSubstring matches fragment case-insensitively anywhere in
	// the ID, newest first. An empty fragment returns no records.
	SearchByIDSubstring(ctx context.Context, fragment string) ([]models.Campaign, error)
	// SearchByDateDay returns records uploaded within the UTC day starting
	// at day 00:00:00, newest first. The next midnight is excluded.
	SearchByDateDay(ctx context.Context, day time.Time) ([]models.Campaign, error)
	// CountSince counts records with UploadDate >= threshold.
	CountSince(ctx context.Context, threshold time.Time) (int64, error)
	// MostRecent returns up to n records, newest first.
	MostRecent(ctx context.Context, n int) ([]models.Campaign, error)
}

type gormCampaignStore struct {
	db *gorm.DB
}

// NewCampaignStore creates a CampaignStore backed by the gorm connection.
func NewCampaignStore(db *gorm.DB) CampaignStore {
	return &gormCampaignStore{db: db}
}

func (s *gormCampaignStore) Insert(ctx context.Context, c *models.Campaign) error {
	err := s.db.WithContext(ctx).Create(c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &apperrors.ConflictError{ID: c.ID.String()}
		}
		return apperrors.Transient("insert campaign", err)
	}
	return nil
}

func (s *gormCampaignStore) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	var c models.Campaign
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Transient("get campaign", err)
	}
	return &c, nil
}

func (s *gormCampaignStore) SearchByIDSubstring(ctx context.Context, fragment string) ([]models.Campaign, error) {
	if fragment == "" {
		return []models.Campaign{}, nil
	}
	var results []models.Campaign
	err := s.db.WithContext(ctx).
		Where("CAST(id AS TEXT) ILIKE ?", "%"+fragment+"%").
		Order("upload_date DESC").
		Find(&results).Error
	if err != nil {
		return nil, apperrors.Transient("search campaigns by id", err)
	}
	return results, nil
}

func (s *gormCampaignStore) SearchByDateDay(ctx context.Context, day time.Time) ([]models.Campaign, error) {
	start, end := DayWindow(day)
	var results []models.Campaign
	err := s.db.WithContext(ctx).
		Where("upload_date >= ? AND upload_date < ?", start, end).
		Order("upload_date DESC").
		Find(&results).Error
	if err != nil {
		return nil, apperrors.Transient("search campaigns by day", err)
	}
	return results, nil
}

func (s *gormCampaignStore) CountSince(ctx context.Context, threshold time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Campaign{}).
		Where("upload_date >= ?", threshold).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Transient("count campaigns", err)
	}
	return count, nil
}

func (s *gormCampaignStore) MostRecent(ctx context.Context, n int) ([]models.Campaign, error) {
	var results []models.Campaign
	err := s.db.WithContext(ctx).
		Order("upload_date DESC").
		Limit(n).
		Find(&results).Error
	if err != nil {
		return nil, apperrors.Transient("list recent campaigns", err)
	}
	return results, nil
}

// DayWindow returns the half-open UTC interval [day 00:00, day+24h 00:00)
// covering the calendar day that contains t.
func DayWindow(t time.Time) (start, end time.Time) {
	u := t.UTC()
	start = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// Package service holds the flows behind the portal's routes: the two-step
// upload, verification resolution, and the search/dashboard queries.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/verifica-mx/campaign-verifier/internal/apperrors"
	"github.com/verifica-mx/campaign-verifier/internal/models"
	"github.com/verifica-mx/campaign-verifier/internal/repositories"
	"github.com/verifica-mx/campaign-verifier/internal/utils"
)

// ObjectStorage is the slice of the blob collaborator the flows need.
// *repositories.R2Storage satisfies it.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	PublicURL(key string) string
}

type CampaignService struct {
	Store        repositories.CampaignStore
	Storage      ObjectStorage
	PublicAppURL string
}

func NewCampaignService(store repositories.CampaignStore, storage ObjectStorage, publicAppURL string) *CampaignService {
	return &CampaignService{
		Store:        store,
		Storage:      storage,
		PublicAppURL: publicAppURL,
	}
}

type UploadInput struct {
	Filename    string
	Data        []byte
	ContentType string
	Title       string
	Description string
	Author      string
	UserID      *uuid.UUID
}

// UploadCampaign runs the two-step upload: blob first, record second. The two
// steps share no transaction; if the insert fails after the blob was written,
// the blob stays behind as an orphan and is not cleaned up.
func (s *CampaignService) UploadCampaign(ctx context.Context, input UploadInput) (*models.Campaign, error) {
	if input.Title == "" {
		return nil, &apperrors.ValidationError{Field: "title"}
	}
	if input.Author == "" {
		return nil, &apperrors.ValidationError{Field: "author"}
	}

	id := utils.NewCampaignID()
	path := utils.StoragePath(id, input.Filename)

	if err := s.Storage.Upload(ctx, path, input.Data, input.ContentType); err != nil {
		return nil, apperrors.Transient("upload image", err)
	}

	campaign := &models.Campaign{
		ID:          id,
		Filename:    input.Filename,
		StoragePath: path,
		UploadDate:  time.Now().UTC(),
		Title:       input.Title,
		Description: input.Description,
		Author:      input.Author,
		UserID:      input.UserID,
	}

	if err := s.Store.Insert(ctx, campaign); err != nil {
		return nil, err
	}

	return campaign, nil
}

// VerificationURL is the public link recipients visit (or scan) to verify a
// campaign.
func (s *CampaignService) VerificationURL(id uuid.UUID) string {
	return fmt.Sprintf("%s/verify/%s", s.PublicAppURL, id)
}

// VerifiedCampaign pairs a resolved record with the public URL of its image.
type VerifiedCampaign struct {
	Campaign models.Campaign
	ImageURL string
}

// Resolve looks up a campaign by its public identifier. A store miss returns
// apperrors.ErrNotFound without touching the blob collaborator; "verified"
// means only that a record with this identifier exists.
func (s *CampaignService) Resolve(ctx context.Context, id string) (*VerifiedCampaign, error) {
	campaign, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &VerifiedCampaign{
		Campaign: *campaign,
		ImageURL: s.Storage.PublicURL(campaign.StoragePath),
	}, nil
}

// Search modes accepted by the search page.
const (
	SearchModeID   = "id"
	SearchModeDate = "date"
)

// Search dispatches to the store query matching the caller-selected mode.
// Mode "date" expects term as a YYYY-MM-DD calendar day.
func (s *CampaignService) Search(ctx context.Context, mode, term string) ([]models.Campaign, error) {
	switch mode {
	case SearchModeID:
		return s.Store.SearchByIDSubstring(ctx, term)
	case SearchModeDate:
		day, err := time.ParseInLocation("2006-01-02", term, time.UTC)
		if err != nil {
			return nil, &apperrors.ValidationError{Field: "term", Reason: "must be a YYYY-MM-DD date"}
		}
		return s.Store.SearchByDateDay(ctx, day)
	default:
		return nil, &apperrors.ValidationError{Field: "type", Reason: "must be id or date"}
	}
}

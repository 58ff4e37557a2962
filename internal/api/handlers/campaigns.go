package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/verifica-mx/campaign-verifier/internal/api/middleware"
	"github.com/verifica-mx/campaign-verifier/internal/apperrors"
	"github.com/verifica-mx/campaign-verifier/internal/service"
	"github.com/verifica-mx/campaign-verifier/internal/utils"
)

// CampaignHandler serves the portal routes backed by the campaign service.
type CampaignHandler struct {
	Service *service.CampaignService
}

func NewCampaignHandler(svc *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{Service: svc}
}

// respondError maps the shared error taxonomy onto HTTP statuses. Transient
// failures are surfaced once; nothing is retried or queued.
func respondError(w http.ResponseWriter, err error) {
	var (
		validationErr *apperrors.ValidationError
		conflictErr   *apperrors.ConflictError
		transientErr  *apperrors.TransientError
	)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Campaign not found",
		})
	case errors.As(err, &validationErr):
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: validationErr.Error(),
		})
	case errors.As(err, &conflictErr):
		utils.JSONResponse(w, http.StatusConflict, utils.Payload{
			Success: false,
			Message: conflictErr.Error(),
		})
	case errors.As(err, &transientErr):
		utils.JSONResponse(w, http.StatusBadGateway, utils.Payload{
			Success: false,
			Message: "A storage service is temporarily unavailable",
		})
	default:
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Internal server error",
		})
	}
}

// POST /api/v1/campaigns
// Upload godoc
// @Summary Upload a campaign image
// @Description Stores the image and registers its metadata, returning the verification link and QR endpoint.
// @Tags Campaigns
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Campaign image"
// @Param title formData string true "Campaign title"
// @Param author formData string true "Campaign author"
// @Param description formData string false "Campaign description"
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 502 {object} utils.Payload
// @Router /api/v1/campaigns [post]
func (h *CampaignHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	const maxUploadSize = 10 << 20 // 10 MB
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid file upload form",
		})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "No image provided",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Failed to read image",
		})
		return
	}

	input := service.UploadInput{
		Filename:    header.Filename,
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Author:      r.FormValue("author"),
	}

	// The route is session-gated, but the record schema also allows an
	// anonymous owner.
	if userID, ok := r.Context().Value(middleware.UserIDKey).(string); ok && userID != "" {
		if parsed, err := uuid.Parse(userID); err == nil {
			input.UserID = &parsed
		}
	}

	campaign, err := h.Service.UploadCampaign(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Campaign image uploaded successfully",
		Data: map[string]any{
			"campaign":        campaign,
			"verificationUrl": h.Service.VerificationURL(campaign.ID),
		},
	})
}

// GET /api/v1/verify/{id}
// Verify godoc
// @Summary Verify a campaign by its identifier
// @Description Resolves the identifier to the campaign record and the public image URL. A miss is a not-found state, not an error.
// @Tags Campaigns
// @Produce json
// @Param id path string true "Campaign identifier"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/verify/{id} [get]
func (h *CampaignHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Missing campaign id",
		})
		return
	}

	verified, err := h.Service.Resolve(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Campaign verified",
		Data: map[string]any{
			"campaign": verified.Campaign,
			"imageUrl": verified.ImageURL,
		},
	})
}

// GET /api/v1/verify/{id}/qr
// VerifyQR godoc
// @Summary QR code for a verification link
// @Description Renders a PNG QR code encoding the public verification URL of an existing campaign.
// @Tags Campaigns
// @Produce png
// @Param id path string true "Campaign identifier"
// @Success 200 {file} binary
// @Failure 404 {object} utils.Payload
// @Router /api/v1/verify/{id}/qr [get]
func (h *CampaignHandler) VerifyQR(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Missing campaign id",
		})
		return
	}

	// Only mint QR codes for identifiers that resolve.
	verified, err := h.Service.Resolve(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	png, err := qrcode.Encode(h.Service.VerificationURL(verified.Campaign.ID), qrcode.Medium, 256)
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to render QR code",
		})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// GET /api/v1/search?type={id|date}&term=…
// Search godoc
// @Summary Search campaigns
// @Description Searches by identifier substring (type=id) or by UTC calendar day (type=date, term=YYYY-MM-DD), newest first.
// @Tags Campaigns
// @Produce json
// @Param type query string true "Search mode: id or date"
// @Param term query string true "Identifier fragment or YYYY-MM-DD"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/v1/search [get]
func (h *CampaignHandler) Search(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("type")
	if mode == "" {
		mode = service.SearchModeID
	}
	term := r.URL.Query().Get("term")

	results, err := h.Service.Search(r.Context(), mode, term)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Search completed",
		Data: map[string]any{
			"results": results,
		},
	})
}

// GET /api/v1/dashboard
// Dashboard godoc
// @Summary Upload counters and recent campaigns
// @Description Returns totals for today, this week (Sunday start), this month, and all time, plus the five most recent uploads.
// @Tags Campaigns
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 502 {object} utils.Payload
// @Router /api/v1/dashboard [get]
func (h *CampaignHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.DashboardStats(r.Context(), time.Now())
	if err != nil {
		respondError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Dashboard stats retrieved",
		Data: map[string]any{
			"total":     stats.Total,
			"thisMonth": stats.ThisMonth,
			"thisWeek":  stats.ThisWeek,
			"today":     stats.Today,
			"recent":    stats.Recent,
		},
	})
}

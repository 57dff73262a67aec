package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artisan-works/commission-system/internal/core/domain"
	"github.com/artisan-works/commission-system/internal/core/ports"
)

// ArtworkHandler handles the buyer gallery endpoints.
type ArtworkHandler struct {
	service ports.ArtworkService
}

func NewArtworkHandler(service ports.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{service: service}
}

type generateArtworkRequest struct {
	Prompt string `json:"prompt" validate:"required,min=3"`
}

type artworkResponse struct {
	ID          string `json:"id"`
	Prompt      string `json:"prompt"`
	ImageHandle string `json:"image_handle"`
	OwnerID     string `json:"owner_id"`
	CreatedAt   string `json:"created_at"`
}

func toArtworkResponse(a *domain.Artwork) artworkResponse {
	return artworkResponse{
		ID:          a.ID,
		Prompt:      a.Prompt,
		ImageHandle: a.ImageHandle,
		OwnerID:     a.OwnerID,
		CreatedAt:   a.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// Generate handles POST /v1/artworks — synthesizes an image for the prompt
// and stores it in the caller's gallery.
//
// @Summary      Generate an artwork
// @Tags         artworks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generateArtworkRequest  true  "Prompt"
// @Success      201   {object}  artworkResponse
// @Failure      403   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/artworks [post]
func (h *ArtworkHandler) Generate(c echo.Context) error {
	var req generateArtworkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	artwork, err := h.service.Generate(c.Request().Context(), session, req.Prompt)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toArtworkResponse(artwork))
}

// List handles GET /v1/artworks — the caller's gallery, most-recent-first.
//
// @Summary      List my artworks
// @Tags         artworks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  artworkResponse
// @Router       /v1/artworks [get]
func (h *ArtworkHandler) List(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	artworks, err := h.service.ListMine(c.Request().Context(), session)
	if err != nil {
		return err
	}

	out := make([]artworkResponse, 0, len(artworks))
	for _, a := range artworks {
		out = append(out, toArtworkResponse(a))
	}
	return c.JSON(http.StatusOK, out)
}

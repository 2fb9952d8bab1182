package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
	"github.com/tattoostudio/studio-manager/internal/core/ports"
)

type ArtistHandler struct {
	service ports.ArtistService
}

func NewArtistHandler(service ports.ArtistService) *ArtistHandler {
	return &ArtistHandler{service: service}
}

// List handles GET /api/artists.
//
// @Summary      List artists
// @Tags         artists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  artistListResponse
// @Router       /api/artists [get]
func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artistListResponse{Success: true, Artists: artists, Count: len(artists)})
}

// Get handles GET /api/artists/:id.
//
// @Summary      Get an artist
// @Tags         artists
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Artist ID"
// @Success      200  {object}  artistResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/artists/{id} [get]
func (h *ArtistHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	artist, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artistResponse{Success: true, Artist: artist})
}

// Create handles POST /api/artists.
//
// @Summary      Create an artist
// @Tags         artists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArtistRequest  true  "New artist"
// @Success      201   {object}  artistResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/artists [post]
func (h *ArtistHandler) Create(c echo.Context) error {
	var req createArtistRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	artist, err := h.service.Create(c.Request().Context(), &domain.Artist{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Bio:       req.Bio,
		Portfolio: req.Portfolio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, artistResponse{Success: true, Artist: artist, Message: "Artist created successfully"})
}

// Update handles PUT /api/artists/:id.
//
// @Summary      Update an artist
// @Tags         artists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Artist ID"
// @Param        body  body      updateArtistRequest  true  "Fields to change"
// @Success      200   {object}  artistResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/artists/{id} [put]
func (h *ArtistHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateArtistRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	artist, err := h.service.Update(c.Request().Context(), id, domain.ArtistPatch{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Bio:       req.Bio,
		Portfolio: req.Portfolio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artistResponse{Success: true, Artist: artist, Message: "Artist updated successfully"})
}

// Delete handles DELETE /api/artists/:id.
//
// @Summary      Delete an artist
// @Tags         artists
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Artist ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/artists/{id} [delete]
func (h *ArtistHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Artist deleted successfully"})
}

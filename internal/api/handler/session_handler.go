package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tattoostudio/studio-manager/internal/api/metrics"
	"github.com/tattoostudio/studio-manager/internal/core/domain"
	"github.com/tattoostudio/studio-manager/internal/core/ports"
)

// HeaderIdempotencyKey lets clients retry a booking without creating duplicates.
const HeaderIdempotencyKey = "Idempotency-Key"

type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// List handles GET /api/sessions.
//
// @Summary      List sessions
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionListResponse
// @Router       /api/sessions [get]
func (h *SessionHandler) List(c echo.Context) error {
	sessions, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionListResponse{Success: true, Sessions: sessions, Count: len(sessions)})
}

// Get handles GET /api/sessions/:id.
//
// @Summary      Get a session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Session ID"
// @Success      200  {object}  sessionResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sessions/{id} [get]
func (h *SessionHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	session, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Success: true, Session: session})
}

// Create handles POST /api/sessions.
//
// A repeated Idempotency-Key returns the originally booked session with 200
// instead of booking again.
//
// @Summary      Book a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Client-generated key for safe retries"
// @Param        body             body      createSessionRequest  true   "New session"
// @Success      200              {object}  sessionResponse  "Replayed booking"
// @Success      201              {object}  sessionResponse
// @Failure      400              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /api/sessions [post]
func (h *SessionHandler) Create(c echo.Context) error {
	var req createSessionRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	date, err := parseSessionDate(req.Date)
	if err != nil {
		return err
	}

	key := strings.TrimSpace(c.Request().Header.Get(HeaderIdempotencyKey))
	result, err := h.service.Create(c.Request().Context(), ports.CreateSessionInput{
		ClientID:       req.ClientID,
		ArtistID:       req.ArtistID,
		Date:           date,
		Status:         domain.SessionStatus(req.Status),
		Notes:          req.Notes,
		IdempotencyKey: key,
	})
	if err != nil {
		return err
	}

	if result.Replayed {
		metrics.IdempotencyTotal.WithLabelValues("hit").Inc()
		return c.JSON(http.StatusOK, sessionResponse{Success: true, Session: result.Session})
	}
	if key != "" {
		metrics.IdempotencyTotal.WithLabelValues("miss").Inc()
	}
	metrics.SessionsBookedTotal.WithLabelValues(string(result.Session.Status)).Inc()
	return c.JSON(http.StatusCreated, sessionResponse{Success: true, Session: result.Session, Message: "Session created successfully"})
}

// Update handles PUT /api/sessions/:id.
//
// @Summary      Update a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Session ID"
// @Param        body  body      updateSessionRequest  true  "Fields to change"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/sessions/{id} [put]
func (h *SessionHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateSessionRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	patch := domain.SessionPatch{ClientID: req.ClientID, ArtistID: req.ArtistID, Notes: req.Notes}
	if req.Date != nil {
		date, err := parseSessionDate(*req.Date)
		if err != nil {
			return err
		}
		patch.Date = &date
	}
	if req.Status != nil {
		status := domain.SessionStatus(*req.Status)
		patch.Status = &status
	}

	session, err := h.service.Update(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Success: true, Session: session, Message: "Session updated successfully"})
}

// Delete handles DELETE /api/sessions/:id.
//
// @Summary      Delete a session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Session ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sessions/{id} [delete]
func (h *SessionHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Session deleted successfully"})
}

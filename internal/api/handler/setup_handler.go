package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tattoostudio/studio-manager/internal/api/metrics"
	"github.com/tattoostudio/studio-manager/internal/core/ports"
)

// AllTablesExisted is the created_tables value reported when a run found
// every table already in place.
const AllTablesExisted = "ALREADY EXISTS"

// SetupHandler exposes schema provisioning over HTTP.
type SetupHandler struct {
	provisioner ports.SchemaProvisioner
	log         zerolog.Logger
	now         func() time.Time
}

func NewSetupHandler(provisioner ports.SchemaProvisioner, log zerolog.Logger) *SetupHandler {
	return &SetupHandler{provisioner: provisioner, log: log, now: time.Now}
}

// Database handles POST /api/setup/database.
//
// @Summary      Ensure all database tables exist
// @Description  Idempotent. Only available in debug mode.
// @Tags         setup
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  setupResponse
// @Failure      403  {string}  string  "Not in debug mode"
// @Failure      500  {object}  setupResponse
// @Router       /api/setup/database [post]
func (h *SetupHandler) Database(c echo.Context) error {
	result, err := h.provisioner.EnsureSchema(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("schema provisioning unavailable")
		metrics.ProvisioningRunsTotal.WithLabelValues(string(ports.ProvisionFailure)).Inc()
		return c.JSON(http.StatusInternalServerError, setupResponse{
			Status:    string(ports.ProvisionFailure),
			Timestamp: h.now().UTC().Format(time.RFC3339),
			Error:     err.Error(),
		})
	}

	metrics.ProvisioningRunsTotal.WithLabelValues(string(result.Status)).Inc()
	metrics.TablesCreatedTotal.Add(float64(len(result.Created)))

	code := http.StatusOK
	if result.Status != ports.ProvisionSuccess {
		code = http.StatusInternalServerError
	}
	return c.JSON(code, toSetupResponse(result))
}

func toSetupResponse(r *ports.ProvisionResult) setupResponse {
	resp := setupResponse{
		Status:    string(r.Status),
		Timestamp: r.Timestamp.UTC().Format(time.RFC3339),
		Error:     r.Error,
	}
	switch {
	case r.AllExisted():
		resp.CreatedTables = AllTablesExisted
	case r.Created == nil:
		resp.CreatedTables = []string{}
	default:
		resp.CreatedTables = r.Created
	}
	return resp
}

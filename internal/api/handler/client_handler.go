package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
	"github.com/tattoostudio/studio-manager/internal/core/ports"
)

type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /api/clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  clientListResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientListResponse{Success: true, Clients: clients, Count: len(clients)})
}

// Get handles GET /api/clients/:id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  clientResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	client, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientResponse{Success: true, Client: client})
}

// Create handles POST /api/clients. A qr_id is generated when omitted.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "New client"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	client, err := h.service.Create(c.Request().Context(), &domain.Client{
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		Allergies:   req.Allergies,
		MedicalInfo: req.MedicalInfo,
		QRID:        req.QRID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, clientResponse{Success: true, Client: client, Message: "Client created successfully"})
}

// Update handles PUT /api/clients/:id.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Client ID"
// @Param        body  body      updateClientRequest  true  "Fields to change"
// @Success      200   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateClientRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	client, err := h.service.Update(c.Request().Context(), id, domain.ClientPatch{
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		Allergies:   req.Allergies,
		MedicalInfo: req.MedicalInfo,
		QRID:        req.QRID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientResponse{Success: true, Client: client, Message: "Client updated successfully"})
}

// Delete handles DELETE /api/clients/:id.
//
// @Summary      Delete a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Client deleted successfully"})
}

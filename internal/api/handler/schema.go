package handler

import "github.com/tattoostudio/studio-manager/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error"`
}

type messageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,role"`
	Birth    *int   `json:"birth"    validate:"omitempty,gt=1900"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success     bool         `json:"success" example:"true"`
	AccessToken string       `json:"access_token"`
	User        *domain.User `json:"user"`
}

// --- Users ---

type updateUserRequest struct {
	Name   *string `json:"name"`
	Birth  *int    `json:"birth"  validate:"omitempty,gt=1900"`
	Active *bool   `json:"active"`
	Role   *string `json:"role"   validate:"omitempty,role"`
}

type userResponse struct {
	Success bool         `json:"success" example:"true"`
	User    *domain.User `json:"user"`
	Message string       `json:"message,omitempty"`
}

type userListResponse struct {
	Success bool           `json:"success" example:"true"`
	Users   []*domain.User `json:"users"`
	Count   int            `json:"count"`
}

// --- Clients ---

type createClientRequest struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Allergies   string `json:"allergies"`
	MedicalInfo string `json:"medical_info"`
	QRID        string `json:"qr_id"`
}

type updateClientRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Allergies   *string `json:"allergies"`
	MedicalInfo *string `json:"medical_info"`
	QRID        *string `json:"qr_id"`
}

type clientResponse struct {
	Success bool           `json:"success" example:"true"`
	Client  *domain.Client `json:"client"`
	Message string         `json:"message,omitempty"`
}

type clientListResponse struct {
	Success bool             `json:"success" example:"true"`
	Clients []*domain.Client `json:"clients"`
	Count   int              `json:"count"`
}

// --- Artists ---

type createArtistRequest struct {
	Name      string `json:"name"  validate:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	Bio       string `json:"bio"`
	Portfolio string `json:"portfolio"`
}

type updateArtistRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Bio       *string `json:"bio"`
	Portfolio *string `json:"portfolio"`
}

type artistResponse struct {
	Success bool           `json:"success" example:"true"`
	Artist  *domain.Artist `json:"artist"`
	Message string         `json:"message,omitempty"`
}

type artistListResponse struct {
	Success bool             `json:"success" example:"true"`
	Artists []*domain.Artist `json:"artists"`
	Count   int              `json:"count"`
}

// --- Sessions ---

type createSessionRequest struct {
	ClientID int64  `json:"client_id" validate:"required,gt=0"`
	ArtistID int64  `json:"artist_id" validate:"required,gt=0"`
	Date     string `json:"date"      validate:"required" example:"2026-06-01T14:30:00Z"`
	Status   string `json:"status"    validate:"omitempty,session_status"`
	Notes    string `json:"notes"`
}

type updateSessionRequest struct {
	ClientID *int64  `json:"client_id" validate:"omitempty,gt=0"`
	ArtistID *int64  `json:"artist_id" validate:"omitempty,gt=0"`
	Date     *string `json:"date"`
	Status   *string `json:"status"    validate:"omitempty,session_status"`
	Notes    *string `json:"notes"`
}

type sessionResponse struct {
	Success bool            `json:"success" example:"true"`
	Session *domain.Session `json:"session"`
	Message string          `json:"message,omitempty"`
}

type sessionListResponse struct {
	Success  bool              `json:"success" example:"true"`
	Sessions []*domain.Session `json:"sessions"`
	Count    int               `json:"count"`
}

// --- Setup ---

// setupResponse is the wire form of a provisioning run. CreatedTables is
// either the list of created tables or the string "ALREADY EXISTS".
type setupResponse struct {
	Status        string `json:"status" example:"success"`
	CreatedTables any    `json:"created_tables,omitempty" swaggertype:"array,string"`
	Timestamp     string `json:"timestamp" example:"2026-01-01T00:00:00Z"`
	Error         string `json:"error,omitempty"`
}

package domain

import "time"

// SessionStatus is the lifecycle state of a tattoo session.
type SessionStatus string

const (
	SessionPlanned    SessionStatus = "planned"
	SessionScheduled  SessionStatus = "scheduled"
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionCancelled  SessionStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s SessionStatus) Valid() bool {
	switch s {
	case SessionPlanned, SessionScheduled, SessionInProgress, SessionCompleted, SessionCancelled:
		return true
	}
	return false
}

// Session is an appointment between one client and one artist.
type Session struct {
	ID       int64         `json:"id"`
	ClientID int64         `json:"client_id"`
	ArtistID int64         `json:"artist_id"`
	Date     time.Time     `json:"date"`
	Status   SessionStatus `json:"status"`
	Notes    string        `json:"notes,omitempty"`
}

type SessionPatch struct {
	ClientID *int64
	ArtistID *int64
	Date     *time.Time
	Status   *SessionStatus
	Notes    *string
}

func (p SessionPatch) Empty() bool {
	return p.ClientID == nil && p.ArtistID == nil && p.Date == nil && p.Status == nil && p.Notes == nil
}

func (p SessionPatch) Apply(s *Session) {
	if p.ClientID != nil {
		s.ClientID = *p.ClientID
	}
	if p.ArtistID != nil {
		s.ArtistID = *p.ArtistID
	}
	if p.Date != nil {
		s.Date = p.Date.UTC()
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	setString(&s.Notes, p.Notes)
}

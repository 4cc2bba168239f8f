package consultation

import (
	"time"

	"github.com/google/uuid"

	"clinic-scribe/internal/soap"
)

// Status tracks the doctor review workflow.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Consultation is the aggregate root: one recorded patient session, the
// SOAP note assembled from it, and its review state. The note the
// pipeline produced is immutable; a doctor review replaces it with an
// edited copy rather than mutating it in place.
type Consultation struct {
	ID          uuid.UUID `json:"id"`
	PatientName string    `json:"patient_name"`

	Transcript       string              `json:"transcript"`
	DetectedLanguage string              `json:"detected_language"`
	PainLocations    []soap.PainLocation `json:"pain_locations"`
	Vitals           soap.Vitals         `json:"vitals"`

	Note *soap.Note `json:"soap_note"`

	Status           Status     `json:"status"`
	ApprovedByDoctor bool       `json:"approved_by_doctor"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

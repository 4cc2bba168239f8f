package consultation

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"clinic-scribe/internal/soap"
)

var (
	// ErrEmptyTranscript rejects a submission before the pipeline runs.
	// The pipeline itself is total; this is a caller-input error.
	ErrEmptyTranscript = errors.New("transcript is empty")

	// ErrAlreadyApproved guards an approved note against further edits.
	ErrAlreadyApproved = errors.New("consultation already approved")
)

// Assembler is the pipeline entry point the service drives.
type Assembler interface {
	Assemble(ctx context.Context, transcript string, painLocations []soap.PainLocation, vitals soap.Vitals) *soap.Note
}

// SubmitRequest is everything the patient flow hands over.
type SubmitRequest struct {
	PatientName   string              `json:"patient_name"`
	Transcript    string              `json:"transcript"`
	PainLocations []soap.PainLocation `json:"pain_locations"`
	Vitals        soap.Vitals         `json:"vitals"`
}

type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Consultation, error)
	Get(ctx context.Context, id uuid.UUID) (*Consultation, error)
	List(ctx context.Context) ([]*Consultation, error)
	UpdateNote(ctx context.Context, id uuid.UUID, note *soap.Note) (*Consultation, error)
	Approve(ctx context.Context, id uuid.UUID) (*Consultation, error)
	Reject(ctx context.Context, id uuid.UUID) (*Consultation, error)
}

type service struct {
	repo      Repository
	assembler Assembler
	logger    zerolog.Logger
}

func NewService(repo Repository, assembler Assembler, logger zerolog.Logger) Service {
	return &service{
		repo:      repo,
		assembler: assembler,
		logger:    logger.With().Str("component", "consultation_service").Logger(),
	}
}

// Submit runs the SOAP pipeline over the transcript and stores the result
// as a draft awaiting doctor review.
func (s *service) Submit(ctx context.Context, req SubmitRequest) (*Consultation, error) {
	if strings.TrimSpace(req.Transcript) == "" {
		return nil, ErrEmptyTranscript
	}
	if err := validateVitals(req.Vitals); err != nil {
		return nil, err
	}

	note := s.assembler.Assemble(ctx, req.Transcript, req.PainLocations, req.Vitals)

	c := &Consultation{
		ID:               uuid.New(),
		PatientName:      req.PatientName,
		Transcript:       req.Transcript,
		DetectedLanguage: note.Metadata.DetectedLanguage,
		PainLocations:    note.Subjective.PainLocations,
		Vitals:           req.Vitals,
		Note:             note,
		Status:           StatusDraft,
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, errors.Wrap(err, "save consultation")
	}

	s.logger.Info().
		Str("consultation_id", c.ID.String()).
		Str("language", c.DetectedLanguage).
		Str("risk_level", string(note.RiskAssessment.Level)).
		Int("signals", len(note.ClinicalSignals)).
		Msg("consultation submitted")

	return c, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Consultation, error) {
	return s.repo.List(ctx)
}

// UpdateNote replaces the stored note with the doctor's edited copy.
// Approved consultations are frozen.
func (s *service) UpdateNote(ctx context.Context, id uuid.UUID, note *soap.Note) (*Consultation, error) {
	if note == nil {
		return nil, errors.New("note is required")
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.ApprovedByDoctor {
		return nil, ErrAlreadyApproved
	}

	c.Note = note
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, errors.Wrap(err, "save edited note")
	}
	return c, nil
}

func (s *service) Approve(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.ApprovedByDoctor {
		return nil, ErrAlreadyApproved
	}

	now := time.Now()
	c.Status = StatusApproved
	c.ApprovedByDoctor = true
	c.ApprovedAt = &now

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, errors.Wrap(err, "save approval")
	}

	s.logger.Info().Str("consultation_id", id.String()).Msg("consultation approved")
	return c, nil
}

func (s *service) Reject(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.ApprovedByDoctor {
		return nil, ErrAlreadyApproved
	}

	c.Status = StatusRejected
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, errors.Wrap(err, "save rejection")
	}

	s.logger.Info().Str("consultation_id", id.String()).Msg("consultation rejected")
	return c, nil
}

// validateVitals reports every out-of-range field at once so the vitals
// desk can fix the whole form in one pass.
func validateVitals(v soap.Vitals) error {
	var result *multierror.Error

	checkPositive := func(name string, val *float64) {
		if val != nil && *val <= 0 {
			result = multierror.Append(result, errors.Errorf("%s must be positive", name))
		}
	}

	checkPositive("height", v.Height)
	checkPositive("weight", v.Weight)
	checkPositive("temperature", v.Temperature)
	checkPositive("blood pressure systolic", v.BloodPressureSystolic)
	checkPositive("blood pressure diastolic", v.BloodPressureDiastolic)
	checkPositive("pulse rate", v.PulseRate)
	checkPositive("respiratory rate", v.RespiratoryRate)
	checkPositive("bmi", v.BMI)

	if v.OxygenSaturation != nil && (*v.OxygenSaturation <= 0 || *v.OxygenSaturation > 100) {
		result = multierror.Append(result, errors.New("oxygen saturation must be between 1 and 100"))
	}

	return result.ErrorOrNil()
}

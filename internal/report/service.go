package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/signintech/gopdf"

	"clinic-scribe/internal/consultation"
	"clinic-scribe/internal/soap"
)

// Common DejaVuSans locations across base images.
var fontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// Service renders a consultation and its SOAP note to an A4 PDF the
// doctor dashboard offers as a download.
type Service struct {
	logger zerolog.Logger
}

func NewService(logger zerolog.Logger) *Service {
	return &Service{logger: logger.With().Str("component", "report").Logger()}
}

func (s *Service) Render(c consultation.Consultation) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, errors.Wrap(fontErr, "load report font (is ttf-dejavu installed?)")
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Clinical Consultation Report")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Date: %s", c.CreatedAt.Format("02 Jan 2006 15:04")))
	pdf.Br(14)
	if c.PatientName != "" {
		pdf.Cell(nil, fmt.Sprintf("Patient: %s", c.PatientName))
		pdf.Br(14)
	}
	pdf.Cell(nil, fmt.Sprintf("Consultation ID: %s", c.ID))
	pdf.Br(14)
	pdf.Cell(nil, fmt.Sprintf("Status: %s", strings.ToUpper(string(c.Status))))
	if c.ApprovedAt != nil {
		pdf.Br(14)
		pdf.Cell(nil, fmt.Sprintf("Approved: %s", c.ApprovedAt.Format(time.RFC1123)))
	}
	pdf.Br(24)

	note := c.Note
	if note == nil {
		pdf.Cell(nil, "No SOAP note available for this consultation.")
		return finish(&pdf)
	}

	if err := s.writeSubjective(&pdf, note); err != nil {
		return nil, err
	}
	if err := s.writeObjective(&pdf, note); err != nil {
		return nil, err
	}
	if err := s.writeAssessment(&pdf, note); err != nil {
		return nil, err
	}
	if err := s.writeSignalsAndRisk(&pdf, note); err != nil {
		return nil, err
	}
	if err := s.writePlan(&pdf, note); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("consultation_id", c.ID.String()).Msg("rendered report")
	return finish(&pdf)
}

func (s *Service) writeSubjective(pdf *gopdf.GoPdf, note *soap.Note) error {
	if err := section(pdf, "Subjective"); err != nil {
		return err
	}
	writeWrapped(pdf, fmt.Sprintf("Chief Complaint: %s", note.Subjective.ChiefComplaint))
	writeWrapped(pdf, fmt.Sprintf("History: %s", note.Subjective.HistoryOfPresentIllness))
	if len(note.Subjective.Symptoms) > 0 {
		writeWrapped(pdf, fmt.Sprintf("Symptoms: %s", strings.Join(note.Subjective.Symptoms, ", ")))
	}
	writeWrapped(pdf, fmt.Sprintf("Onset: %s | Duration: %s | Severity: %s",
		note.Subjective.Onset, note.Subjective.Duration, note.Subjective.Severity))
	for _, loc := range note.Subjective.PainLocations {
		writeWrapped(pdf, fmt.Sprintf("Pain location: %s", loc.Label))
	}
	for _, ev := range note.Subjective.Timeline {
		writeWrapped(pdf, fmt.Sprintf("- %s", ev.Event))
	}
	pdf.Br(10)
	return nil
}

func (s *Service) writeObjective(pdf *gopdf.GoPdf, note *soap.Note) error {
	if err := section(pdf, "Objective"); err != nil {
		return err
	}
	writeWrapped(pdf, fmt.Sprintf("Vitals: %s", note.Objective.Vitals))
	writeWrapped(pdf, fmt.Sprintf("Examination: %s", note.Objective.Examination))
	pdf.Br(10)
	return nil
}

func (s *Service) writeAssessment(pdf *gopdf.GoPdf, note *soap.Note) error {
	if err := section(pdf, "Assessment"); err != nil {
		return err
	}
	for _, obs := range note.Assessment.Observations {
		writeWrapped(pdf, fmt.Sprintf("- %s", obs))
	}
	for _, q := range note.Assessment.ClarifyingQuestions {
		writeWrapped(pdf, fmt.Sprintf("? %s", q))
	}
	pdf.Br(10)
	return nil
}

func (s *Service) writeSignalsAndRisk(pdf *gopdf.GoPdf, note *soap.Note) error {
	if len(note.ClinicalSignals) > 0 {
		if err := section(pdf, "Clinical Signals"); err != nil {
			return err
		}
		for _, sig := range note.ClinicalSignals {
			writeWrapped(pdf, fmt.Sprintf("[%s] %s - %s", sig.Type, sig.Signal, sig.Recommendation))
		}
		pdf.Br(10)
	}

	if len(note.ConsistencyIssues) > 0 {
		if err := section(pdf, "Consistency Issues"); err != nil {
			return err
		}
		for _, issue := range note.ConsistencyIssues {
			writeWrapped(pdf, fmt.Sprintf("[%s] %s - %s", issue.Severity, issue.Issue, issue.Suggestion))
		}
		pdf.Br(10)
	}

	if err := section(pdf, "Risk"); err != nil {
		return err
	}
	writeWrapped(pdf, fmt.Sprintf("Level: %s (score %d) - %s",
		note.RiskAssessment.Level, note.RiskAssessment.Score, note.RiskAssessment.Urgency))
	for _, f := range note.RiskAssessment.Factors {
		writeWrapped(pdf, fmt.Sprintf("- %s", f))
	}
	writeWrapped(pdf, note.RiskAssessment.Disclaimer)
	pdf.Br(10)
	return nil
}

func (s *Service) writePlan(pdf *gopdf.GoPdf, note *soap.Note) error {
	if err := section(pdf, "Plan"); err != nil {
		return err
	}
	writeWrapped(pdf, fmt.Sprintf("Recommendations: %s", note.Plan.Recommendations))
	writeWrapped(pdf, fmt.Sprintf("Prescriptions: %s", note.Plan.Prescriptions))
	return nil
}

func section(pdf *gopdf.GoPdf, title string) error {
	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return err
	}
	pdf.Cell(nil, title)
	pdf.Br(16)
	return pdf.SetFont("DejaVu", "", 11)
}

func writeWrapped(pdf *gopdf.GoPdf, text string) {
	lines, _ := pdf.SplitText(text, 500)
	for _, l := range lines {
		pdf.Cell(nil, l)
		pdf.Br(13)
	}
}

func finish(pdf *gopdf.GoPdf) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "write PDF")
	}
	return buf.Bytes(), nil
}

package soap

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Placeholders for the doctor-only fields.
const (
	examinationPlaceholder     = "To be documented by doctor"
	recommendationsPlaceholder = "To be determined by doctor"
	prescriptionsPlaceholder   = "To be prescribed by doctor only"
)

// Translator converts text to English, best effort. Implementations may
// suspend on network I/O; any error makes the assembler fall back to the
// untranslated transcript.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Assembler turns a raw transcript plus vitals and pain locations into a
// SOAP note. It holds no mutable state across invocations; concurrent
// assemblies are independent.
type Assembler struct {
	translator Translator
	logger     zerolog.Logger
	now        func() time.Time
}

func NewAssembler(translator Translator, logger zerolog.Logger) *Assembler {
	return &Assembler{
		translator: translator,
		logger:     logger.With().Str("component", "soap_assembler").Logger(),
		now:        time.Now,
	}
}

// Assemble runs the full pipeline. The only suspension point is the
// translation call; everything else is pure computation over strings, so
// the method is total and never fails, including on an empty transcript.
//
// Field extraction works on the translated text when the transcript was
// Hindi; signal detection and consistency checking always see the raw
// transcript. Changing either side changes detection behavior on
// translated input.
func (a *Assembler) Assemble(ctx context.Context, transcript string, painLocations []PainLocation, vitals Vitals) *Note {
	workingText := transcript

	metadata := Metadata{DetectedLanguage: DetectLanguage(transcript)}
	if metadata.DetectedLanguage == LanguageHindi {
		metadata.OriginalText = transcript

		translated, err := a.translator.Translate(ctx, transcript)
		if err != nil {
			a.logger.Warn().Err(err).Msg("translation failed, continuing with original transcript")
			translated = transcript
		}
		metadata.TranslatedText = translated
		workingText = translated
	}

	text := strings.ToLower(workingText)

	symptoms := ExtractSymptoms(text)
	timeline := ExtractTimeline(text, a.now())
	severity := ExtractSeverity(text)
	onset := ExtractOnset(text)
	duration := ExtractDuration(text)

	if painLocations == nil {
		painLocations = []PainLocation{}
	}

	note := &Note{
		Metadata: metadata,
		Subjective: Subjective{
			ChiefComplaint:          ChiefComplaint(symptoms),
			HistoryOfPresentIllness: HistorySummary(workingText),
			Symptoms:                symptoms,
			Onset:                   onset,
			Duration:                duration,
			Severity:                severity,
			PainLocations:           painLocations,
			Timeline:                timeline,
		},
		Objective: Objective{
			Vitals:      vitals.Display(),
			Examination: examinationPlaceholder,
		},
		Assessment: Assessment{
			ClarifyingQuestions: GenerateQuestions(symptoms, text),
		},
		Plan: Plan{
			Recommendations: recommendationsPlaceholder,
			Prescriptions:   prescriptionsPlaceholder,
		},
	}

	note.ClinicalSignals = DetectSignals(transcript)
	note.ConsistencyIssues = CheckConsistency(transcript)
	note.PatientEducation = GenerateEducation(symptoms, metadata.DetectedLanguage)
	note.EmotionAnalysis = AnalyzeEmotion(transcript)
	note.RiskAssessment = ScoreRisk(note, note.ClinicalSignals)
	note.Assessment.Observations = GenerateObservations(symptoms, severity, note.ClinicalSignals)

	return note
}

package soap

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type stubTranslator struct {
	out   string
	err   error
	calls int
}

func (s *stubTranslator) Translate(ctx context.Context, text string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.out, nil
}

func newTestAssembler(tr Translator) *Assembler {
	a := NewAssembler(tr, zerolog.Nop())
	a.now = func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) }
	return a
}

func TestAssembleFeverCoughWorsening(t *testing.T) {
	tr := &stubTranslator{}
	a := newTestAssembler(tr)

	note := a.Assemble(context.Background(), "I have had a fever and cough for 3 days, it is getting worse", nil, Vitals{})

	if note.Metadata.DetectedLanguage != LanguageEnglish {
		t.Errorf("detectedLanguage = %q, want en", note.Metadata.DetectedLanguage)
	}
	if note.Metadata.OriginalText != "" {
		t.Errorf("originalText should be unset for English input, got %q", note.Metadata.OriginalText)
	}
	if tr.calls != 0 {
		t.Errorf("translator called %d times for English input", tr.calls)
	}

	wantSymptoms := []string{"Fever", "Cough"}
	if !reflect.DeepEqual(note.Subjective.Symptoms, wantSymptoms) {
		t.Errorf("symptoms = %v, want %v", note.Subjective.Symptoms, wantSymptoms)
	}
	if note.Subjective.ChiefComplaint != "Fever, Cough" {
		t.Errorf("chiefComplaint = %q", note.Subjective.ChiefComplaint)
	}
	if note.Subjective.Duration != "3 days" {
		t.Errorf("duration = %q, want 3 days", note.Subjective.Duration)
	}

	foundWorsening := false
	for _, s := range note.ClinicalSignals {
		if s.Signal == "Progressive symptom worsening" && s.Type == SignalCritical {
			foundWorsening = true
		}
	}
	if !foundWorsening {
		t.Errorf("expected CRITICAL worsening signal, got %v", note.ClinicalSignals)
	}

	if note.RiskAssessment.Level != RiskMedium && note.RiskAssessment.Level != RiskHigh && note.RiskAssessment.Level != RiskCritical {
		t.Errorf("risk level = %s, want at least MEDIUM", note.RiskAssessment.Level)
	}

	if note.PatientEducation.Condition != "Likely Upper Respiratory Tract Infection" {
		t.Errorf("education not generated for Fever+Cough: %+v", note.PatientEducation)
	}

	wantObservations := []string{
		"Clinical picture consistent with upper respiratory tract infection",
		"Critical clinical signals detected - see AI analysis above",
		"Differential diagnosis pending physician review and examination",
	}
	if !reflect.DeepEqual(note.Assessment.Observations, wantObservations) {
		t.Errorf("observations = %v, want %v", note.Assessment.Observations, wantObservations)
	}
}

func TestAssembleHindiTranscript(t *testing.T) {
	tr := &stubTranslator{out: "I have fever"}
	a := newTestAssembler(tr)

	transcript := "मुझे बुखार है"
	note := a.Assemble(context.Background(), transcript, nil, Vitals{})

	if note.Metadata.DetectedLanguage != LanguageHindi {
		t.Errorf("detectedLanguage = %q, want hi", note.Metadata.DetectedLanguage)
	}
	if note.Metadata.OriginalText != transcript {
		t.Errorf("originalText = %q, want raw transcript", note.Metadata.OriginalText)
	}
	if note.Metadata.TranslatedText != "I have fever" {
		t.Errorf("translatedText = %q", note.Metadata.TranslatedText)
	}
	if tr.calls != 1 {
		t.Errorf("translator called %d times, want 1", tr.calls)
	}

	if !containsString(note.Subjective.Symptoms, "Fever") {
		t.Errorf("symptoms = %v, want Fever from translated text", note.Subjective.Symptoms)
	}
	if note.Subjective.HistoryOfPresentIllness != "I have fever" {
		t.Errorf("history = %q, want first sentence of translated text", note.Subjective.HistoryOfPresentIllness)
	}
	if note.PatientEducation.Language != LanguageHindi {
		t.Errorf("education language = %q, want hi", note.PatientEducation.Language)
	}
}

func TestAssembleTranslationFailureFallsBack(t *testing.T) {
	tr := &stubTranslator{err: errors.New("endpoint down")}
	a := newTestAssembler(tr)

	transcript := "मुझे बुखार है"
	note := a.Assemble(context.Background(), transcript, nil, Vitals{})

	if note.Metadata.DetectedLanguage != LanguageHindi {
		t.Errorf("detectedLanguage = %q, want hi", note.Metadata.DetectedLanguage)
	}
	if note.Metadata.TranslatedText != transcript {
		t.Errorf("translatedText = %q, want the original transcript on failure", note.Metadata.TranslatedText)
	}
	// Untranslated Devanagari matches no symptom pattern; the note still
	// assembles with defaults instead of failing.
	if note.Subjective.ChiefComplaint != chiefComplaintFallback {
		t.Errorf("chiefComplaint = %q, want fallback", note.Subjective.ChiefComplaint)
	}
}

func TestAssembleChestPain(t *testing.T) {
	a := newTestAssembler(&stubTranslator{})

	note := a.Assemble(context.Background(), "I have chest pain", nil, Vitals{})

	foundUrgent := false
	for _, s := range note.ClinicalSignals {
		if s.Type == SignalCritical && strings.Contains(strings.ToLower(s.Signal), "chest pain") {
			foundUrgent = true
		}
	}
	if !foundUrgent {
		t.Errorf("expected CRITICAL chest-pain signal, got %v", note.ClinicalSignals)
	}

	if note.RiskAssessment.Score < 5 {
		t.Errorf("risk score = %d, want >= 5", note.RiskAssessment.Score)
	}
	if note.RiskAssessment.Level != RiskHigh && note.RiskAssessment.Level != RiskCritical {
		t.Errorf("risk level = %s, want HIGH or CRITICAL", note.RiskAssessment.Level)
	}
}

func TestAssembleFeverContradiction(t *testing.T) {
	a := newTestAssembler(&stubTranslator{})

	note := a.Assemble(context.Background(), "I have fever. Actually no fever now.", nil, Vitals{})

	found := 0
	for _, issue := range note.ConsistencyIssues {
		if issue.Issue == "Conflicting fever information" && issue.Severity == IssueHigh {
			found++
		}
	}
	if found != 1 {
		t.Errorf("expected one HIGH fever contradiction, got %v", note.ConsistencyIssues)
	}
}

func TestAssembleEmptyVitals(t *testing.T) {
	a := newTestAssembler(&stubTranslator{})

	note := a.Assemble(context.Background(), "I have a cough", nil, Vitals{})

	if note.Objective.Vitals != VitalsPlaceholder {
		t.Errorf("vitals = %q, want %q", note.Objective.Vitals, VitalsPlaceholder)
	}
	if note.Objective.Examination != examinationPlaceholder {
		t.Errorf("examination = %q", note.Objective.Examination)
	}
}

func TestAssembleNoRecognizedSymptoms(t *testing.T) {
	a := newTestAssembler(&stubTranslator{})

	note := a.Assemble(context.Background(), "I just feel off somehow", nil, Vitals{})

	if note.Subjective.ChiefComplaint != chiefComplaintFallback {
		t.Errorf("chiefComplaint = %q, want fallback", note.Subjective.ChiefComplaint)
	}
	want := []string{defaultObservation}
	if !reflect.DeepEqual(note.Assessment.Observations, want) {
		t.Errorf("observations = %v, want %v", note.Assessment.Observations, want)
	}
}

func TestAssembleEmptyTranscriptIsTotal(t *testing.T) {
	a := newTestAssembler(&stubTranslator{})

	note := a.Assemble(context.Background(), "", nil, Vitals{})

	if note == nil {
		t.Fatal("expected a note for empty transcript")
	}
	if note.Metadata.DetectedLanguage != LanguageEnglish {
		t.Errorf("detectedLanguage = %q", note.Metadata.DetectedLanguage)
	}
	if note.Subjective.ChiefComplaint != chiefComplaintFallback {
		t.Errorf("chiefComplaint = %q", note.Subjective.ChiefComplaint)
	}
	if len(note.ClinicalSignals) != 0 {
		t.Errorf("signals = %v, want none", note.ClinicalSignals)
	}
	if note.RiskAssessment.Score != 0 || note.RiskAssessment.Level != RiskLow {
		t.Errorf("risk = %+v, want zero/LOW", note.RiskAssessment)
	}
	if len(note.Assessment.Observations) == 0 {
		t.Error("observations must never be empty")
	}
	if len(note.Assessment.ClarifyingQuestions) == 0 {
		t.Error("clarifying questions must never be empty")
	}
}

func TestAssembleObservationsNeverEmpty(t *testing.T) {
	a := newTestAssembler(&stubTranslator{})

	for _, transcript := range []string{"", "hello", "fever", "chest pain, can't work, getting worse"} {
		note := a.Assemble(context.Background(), transcript, nil, Vitals{})
		if len(note.Assessment.Observations) == 0 {
			t.Errorf("observations empty for %q", transcript)
		}
	}
}

func TestAssemblePainLocationsPassThrough(t *testing.T) {
	a := newTestAssembler(&stubTranslator{})

	locations := []PainLocation{{ID: "head", Label: "Head"}, {ID: "chest", Label: "Chest"}}
	note := a.Assemble(context.Background(), "I have a headache", locations, Vitals{})

	if !reflect.DeepEqual(note.Subjective.PainLocations, locations) {
		t.Errorf("painLocations = %v, want pass-through %v", note.Subjective.PainLocations, locations)
	}
}

func TestAssembleIdempotent(t *testing.T) {
	a := newTestAssembler(&stubTranslator{out: "I have fever and cough"})

	transcript := "मुझे बुखार है"
	vitals := Vitals{Temperature: f(101)}
	locations := []PainLocation{{ID: "head", Label: "Head"}}

	first := a.Assemble(context.Background(), transcript, locations, vitals)
	second := a.Assemble(context.Background(), transcript, locations, vitals)

	// The clock is pinned, so even timeline capture instants agree.
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different notes:\n%+v\n%+v", first, second)
	}
}

func TestAssemblePlanStaysPlaceholder(t *testing.T) {
	a := newTestAssembler(&stubTranslator{})

	note := a.Assemble(context.Background(), "severe chest pain, please help, getting worse", nil, Vitals{})

	if note.Plan.Recommendations != recommendationsPlaceholder {
		t.Errorf("plan.recommendations = %q", note.Plan.Recommendations)
	}
	if note.Plan.Prescriptions != prescriptionsPlaceholder {
		t.Errorf("plan.prescriptions = %q", note.Plan.Prescriptions)
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"hello doctor", LanguageEnglish},
		{"", LanguageEnglish},
		{"मुझे बुखार है", LanguageHindi},
		{"fever since कल", LanguageHindi},
		{"123 !?", LanguageEnglish},
	}

	for _, tt := range tests {
		if got := DetectLanguage(tt.text); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

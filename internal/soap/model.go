package soap

import "time"

// Language codes returned by DetectLanguage.
const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
)

// Severity labels produced by ExtractSeverity.
const (
	SeveritySevere       = "Severe"
	SeverityModerate     = "Moderate"
	SeverityMild         = "Mild"
	SeverityNotSpecified = "Not specified"
)

// SignalType grades a clinical signal.
type SignalType string

const (
	SignalCritical SignalType = "CRITICAL"
	SignalHigh     SignalType = "HIGH"
	SignalMedium   SignalType = "MEDIUM"
)

// IssueSeverity grades a consistency issue.
type IssueSeverity string

const (
	IssueHigh   IssueSeverity = "HIGH"
	IssueMedium IssueSeverity = "MEDIUM"
)

// RiskLevel is the stratified priority tier of a consultation.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// StressLevel is the heuristic distress tier of a transcript.
type StressLevel string

const (
	StressNormal   StressLevel = "normal"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
	StressCritical StressLevel = "critical"
)

// PainLocation is a body-map selection made by the patient. It passes
// through the pipeline unmodified.
type PainLocation struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// TimelineEvent records a time reference found in the transcript. Time is
// the capture instant, not a date computed from the referenced offset.
type TimelineEvent struct {
	Time  time.Time `json:"time"`
	Event string    `json:"event"`
}

// Metadata carries language-detection and translation provenance.
// OriginalText is set only when Hindi was detected; TranslatedText only
// when the translation call ran.
type Metadata struct {
	DetectedLanguage string `json:"detectedLanguage"`
	OriginalText     string `json:"originalText,omitempty"`
	TranslatedText   string `json:"translatedText,omitempty"`
}

type Subjective struct {
	ChiefComplaint          string          `json:"chiefComplaint"`
	HistoryOfPresentIllness string          `json:"historyOfPresentIllness"`
	Symptoms                []string        `json:"symptoms"`
	Onset                   string          `json:"onset"`
	Duration                string          `json:"duration"`
	Severity                string          `json:"severity"`
	PainLocations           []PainLocation  `json:"painLocations"`
	Timeline                []TimelineEvent `json:"timeline"`
}

type Objective struct {
	Vitals      string `json:"vitals"`
	Examination string `json:"examination"`
}

type Assessment struct {
	Observations        []string `json:"observations"`
	ClarifyingQuestions []string `json:"clarifyingQuestions"`
}

// Plan holds doctor-only fields. The pipeline never fills these beyond
// their placeholders.
type Plan struct {
	Recommendations string `json:"recommendations"`
	Prescriptions   string `json:"prescriptions"`
}

// Signal is a rule-detected clinically noteworthy pattern.
type Signal struct {
	Type                SignalType `json:"type"`
	Signal              string     `json:"signal"`
	Evidence            string     `json:"evidence"`
	ClinicalImplication string     `json:"clinicalImplication"`
	Recommendation      string     `json:"recommendation"`
}

// ConsistencyIssue flags contradictory statements within one transcript.
type ConsistencyIssue struct {
	Severity   IssueSeverity `json:"severity"`
	Type       string        `json:"type"`
	Issue      string        `json:"issue"`
	Context    string        `json:"context"`
	Suggestion string        `json:"suggestion"`
}

type RiskAssessment struct {
	Score      int       `json:"score"`
	Level      RiskLevel `json:"level"`
	Urgency    string    `json:"urgency"`
	Factors    []string  `json:"factors"`
	Disclaimer string    `json:"disclaimer"`
}

type EmotionAnalysis struct {
	StressLevel    StressLevel `json:"stressLevel"`
	Indicators     []string    `json:"indicators"`
	Recommendation string      `json:"recommendation"`
	DistressScore  int         `json:"distressScore"`
	Disclaimer     string      `json:"disclaimer"`
}

// Education is a fixed bilingual content block keyed off the extracted
// symptom combination. All fields stay blank when no rule matches.
type Education struct {
	Condition    string   `json:"condition"`
	Explanation  string   `json:"explanation"`
	WhatToDo     []string `json:"whatToDo"`
	WhatToAvoid  []string `json:"whatToAvoid"`
	WhenToReturn []string `json:"whenToReturn"`
	Language     string   `json:"language"`
}

// Note is the assembled SOAP note, the pipeline's sole output.
type Note struct {
	Metadata          Metadata           `json:"metadata"`
	Subjective        Subjective         `json:"subjective"`
	Objective         Objective          `json:"objective"`
	Assessment        Assessment         `json:"assessment"`
	Plan              Plan               `json:"plan"`
	ClinicalSignals   []Signal           `json:"clinicalSignals"`
	ConsistencyIssues []ConsistencyIssue `json:"consistencyIssues"`
	RiskAssessment    RiskAssessment     `json:"riskAssessment"`
	EmotionAnalysis   EmotionAnalysis    `json:"emotionAnalysis"`
	PatientEducation  Education          `json:"patientEducation"`
}

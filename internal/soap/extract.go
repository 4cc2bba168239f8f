package soap

import (
	"regexp"
	"strings"
	"time"
)

// The extractors below all take the lower-cased working text (translated
// when the transcript was Hindi). Each is an ordered table of patterns so
// individual rules can be tested and extended without touching control
// flow. Output order always follows table order, not position in the text.

type symptomPattern struct {
	name    string
	pattern *regexp.Regexp
}

// Bilingual: English terms plus transliterated Hindi.
var symptomPatterns = []symptomPattern{
	{"Headache", regexp.MustCompile(`(?i)headache|head\s*pain|sir\s*dard`)},
	{"Fever", regexp.MustCompile(`(?i)fever|temperature|bukhar`)},
	{"Cough", regexp.MustCompile(`(?i)cough|coughing|khansi`)},
	{"Cold", regexp.MustCompile(`(?i)cold|runny nose|sardi|nazla`)},
	{"Sore throat", regexp.MustCompile(`(?i)sore throat|throat pain|gale.*dard`)},
	{"Body ache", regexp.MustCompile(`(?i)body\s*ache|body\s*pain|badan\s*dard`)},
	{"Nausea", regexp.MustCompile(`(?i)nausea|vomit|ulti`)},
	{"Dizziness", regexp.MustCompile(`(?i)dizzy|dizziness|chakkar`)},
	{"Weakness", regexp.MustCompile(`(?i)weak|weakness|kamzori|thakan`)},
	{"Stomach pain", regexp.MustCompile(`(?i)stomach\s*pain|abdomen|pet.*dard`)},
	{"Chest pain", regexp.MustCompile(`(?i)chest\s*pain`)},
	{"Breathing difficulty", regexp.MustCompile(`(?i)breathing|breath|saans`)},
}

// ExtractSymptoms returns every named symptom whose pattern matches,
// in table order, deduplicated.
func ExtractSymptoms(text string) []string {
	symptoms := []string{}
	for _, sp := range symptomPatterns {
		if sp.pattern.MatchString(text) {
			symptoms = append(symptoms, sp.name)
		}
	}
	return dedupe(symptoms)
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

type timelineRule struct {
	pattern *regexp.Regexp
	format  func(m []string) string
}

var timelineRules = []timelineRule{
	{regexp.MustCompile(`(?i)(\d+)\s*days?\s*ago`), func(m []string) string { return "Started " + m[1] + " days ago" }},
	{regexp.MustCompile(`(?i)(\d+)\s*weeks?\s*ago`), func(m []string) string { return "Started " + m[1] + " weeks ago" }},
	{regexp.MustCompile(`(?i)(\d+)\s*months?\s*ago`), func(m []string) string { return "Started " + m[1] + " months ago" }},
	{regexp.MustCompile(`(?i)since\s*yesterday`), func([]string) string { return "Started yesterday" }},
	{regexp.MustCompile(`(?i)since\s*morning`), func([]string) string { return "Started this morning" }},
	{regexp.MustCompile(`(?i)since\s*evening`), func([]string) string { return "Started this evening" }},
	{regexp.MustCompile(`(?i)for\s*(\d+)\s*days?`), func(m []string) string { return "Duration: " + m[1] + " days" }},
	{regexp.MustCompile(`(?i)for\s*(\d+)\s*hours?`), func(m []string) string { return "Duration: " + m[1] + " hours" }},
	{regexp.MustCompile(`(?i)today`), func([]string) string { return "Started today" }},
}

// ExtractTimeline returns one event per matching rule, in table order.
// Every event carries the capture instant, not a date derived from the
// referenced offset. No deduplication, no chronological sort.
func ExtractTimeline(text string, now time.Time) []TimelineEvent {
	events := []TimelineEvent{}
	for _, rule := range timelineRules {
		if m := rule.pattern.FindStringSubmatch(text); m != nil {
			events = append(events, TimelineEvent{Time: now, Event: rule.format(m)})
		}
	}
	return events
}

var (
	severeRe   = regexp.MustCompile(`(?i)severe|very|terrible|unbearable|excruciating|bahut.*zyada`)
	moderateRe = regexp.MustCompile(`(?i)moderate|medium`)
	mildRe     = regexp.MustCompile(`(?i)mild|slight|light|minor|halka`)
)

// ExtractSeverity is first-match-wins over the three tiers, severe first.
func ExtractSeverity(text string) string {
	switch {
	case severeRe.MatchString(text):
		return SeveritySevere
	case moderateRe.MatchString(text):
		return SeverityModerate
	case mildRe.MatchString(text):
		return SeverityMild
	}
	return SeverityNotSpecified
}

var (
	onsetYesterdayRe = regexp.MustCompile(`(?i)yesterday|kal`)
	onsetTodayRe     = regexp.MustCompile(`(?i)today|aaj`)
	onsetDaysAgoRe   = regexp.MustCompile(`(?i)(\d+)\s*days?\s*ago`)
	onsetWeeksAgoRe  = regexp.MustCompile(`(?i)(\d+)\s*weeks?\s*ago`)
)

// ExtractOnset is first-match-wins in the fixed order yesterday, today,
// N days ago, N weeks ago.
func ExtractOnset(text string) string {
	if onsetYesterdayRe.MatchString(text) {
		return "Yesterday"
	}
	if onsetTodayRe.MatchString(text) {
		return "Today"
	}
	if m := onsetDaysAgoRe.FindStringSubmatch(text); m != nil {
		return m[1] + " days ago"
	}
	if m := onsetWeeksAgoRe.FindStringSubmatch(text); m != nil {
		return m[1] + " weeks ago"
	}
	return notSpecified
}

var durationRe = regexp.MustCompile(`(?i)for\s*(\d+)\s*(day|days|week|weeks|month|months|hour|hours)`)

// ExtractDuration picks up a single "for N <unit>" phrase.
func ExtractDuration(text string) string {
	if m := durationRe.FindStringSubmatch(text); m != nil {
		return m[1] + " " + m[2]
	}
	return notSpecified
}

const (
	notSpecified           = SeverityNotSpecified
	chiefComplaintFallback = "Patient reports discomfort"
)

// ChiefComplaint joins the first three extracted symptoms.
func ChiefComplaint(symptoms []string) string {
	if len(symptoms) == 0 {
		return chiefComplaintFallback
	}
	if len(symptoms) > 3 {
		symptoms = symptoms[:3]
	}
	return strings.Join(symptoms, ", ")
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// HistorySummary is the first non-empty sentence of the working text.
func HistorySummary(workingText string) string {
	for _, s := range sentenceSplitRe.Split(workingText, -1) {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

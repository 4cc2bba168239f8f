package soap

import (
	"regexp"
	"strings"
)

// A signalRule fires its signal when any of its patterns match. Rules are
// independent: several may fire on one transcript, and output keeps
// declaration order rather than severity order.
type signalRule struct {
	patterns []*regexp.Regexp
	signal   Signal
}

var signalRules = []signalRule{
	{
		patterns: compileAll(`getting worse`, `keeps coming back`, `more severe`, `increasing`, `worsening`, `spreading`),
		signal: Signal{
			Type:                SignalCritical,
			Signal:              "Progressive symptom worsening",
			Evidence:            "Patient reports symptoms are getting worse over time",
			ClinicalImplication: "May indicate advancing disease process - prioritize assessment",
			Recommendation:      "Consider escalation of care",
		},
	},
	{
		patterns: compileAll(`wakes me up`, `can't sleep`, `disturbs.*sleep`, `at night`, `keeps me awake`),
		signal: Signal{
			Type:                SignalHigh,
			Signal:              "Sleep disruption due to symptoms",
			Evidence:            "Symptoms severe enough to interfere with sleep",
			ClinicalImplication: "Indicates significant symptom burden",
			Recommendation:      "Assess need for symptom management",
		},
	},
	{
		patterns: compileAll(`thought it was nothing`, `waited.*days`, `didn't think`, `ignored`, `finally decided`),
		signal: Signal{
			Type:                SignalMedium,
			Signal:              "Delay in seeking medical care",
			Evidence:            "Patient initially minimized or ignored symptoms",
			ClinicalImplication: "Condition may be more advanced than timeline suggests",
			Recommendation:      "Thorough examination warranted",
		},
	},
	{
		patterns: compileAll(`keeps coming back`, `again and again`, `multiple times`, `recurring`, `keeps happening`),
		signal: Signal{
			Type:                SignalHigh,
			Signal:              "Recurrent symptoms",
			Evidence:            "Pattern of symptom recurrence noted",
			ClinicalImplication: "Consider chronic or relapsing condition",
			Recommendation:      "Investigate underlying cause",
		},
	},
	{
		patterns: compileAll(`can't work`, `unable to`, `difficult to`, `stopped.*activities`, `had to stop`),
		signal: Signal{
			Type:                SignalCritical,
			Signal:              "Functional impairment",
			Evidence:            "Symptoms interfering with daily activities",
			ClinicalImplication: "Significant quality of life impact",
			Recommendation:      "Aggressive symptom management needed",
		},
	},
	{
		patterns: compileAll(`worried`, `scared`, `anxious`, `concerned`, `afraid`),
		signal: Signal{
			Type:                SignalMedium,
			Signal:              "Emotional distress present",
			Evidence:            "Patient expressing worry or anxiety",
			ClinicalImplication: "Consider psychological support",
			Recommendation:      "Address patient concerns and provide reassurance",
		},
	},
}

var (
	chestPainSignal = Signal{
		Type:                SignalCritical,
		Signal:              "URGENT: Chest pain reported",
		Evidence:            "Patient reports chest pain or pressure",
		ClinicalImplication: "Rule out acute coronary syndrome",
		Recommendation:      "IMMEDIATE cardiac evaluation required",
	}
	respiratorySignal = Signal{
		Type:                SignalCritical,
		Signal:              "URGENT: Respiratory distress",
		Evidence:            "Patient reports breathing difficulty",
		ClinicalImplication: "Potential respiratory emergency",
		Recommendation:      "IMMEDIATE respiratory assessment required",
	}
)

// DetectSignals runs the full signal battery over the raw transcript.
// Note it deliberately takes the untranslated transcript even when
// translation ran for the extractors.
func DetectSignals(transcript string) []Signal {
	text := strings.ToLower(transcript)
	signals := []Signal{}

	for _, rule := range signalRules {
		if anyMatch(rule.patterns, text) {
			signals = append(signals, rule.signal)
		}
	}

	// Red-flag symptoms are literal substring checks, always CRITICAL.
	if strings.Contains(text, "chest pain") || strings.Contains(text, "chest pressure") {
		signals = append(signals, chestPainSignal)
	}
	if strings.Contains(text, "shortness of breath") || strings.Contains(text, "difficulty breathing") {
		signals = append(signals, respiratorySignal)
	}

	return signals
}

func compileAll(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		patterns[i] = regexp.MustCompile(`(?i)` + e)
	}
	return patterns
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

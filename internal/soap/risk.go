package soap

import (
	"fmt"
	"strings"
)

const riskDisclaimer = "Heuristic-based prioritization - not clinically validated. Prototype estimates based on rule coverage."

// Symptom names that alone mark a consultation as high risk. "Severe
// headache" is unreachable from the current symptom table but stays on
// the list so the rule surface does not silently shrink.
var criticalSymptoms = []string{"Chest pain", "Breathing difficulty", "Severe headache"}

// ScoreRisk combines severity, critical symptoms, and signal content into
// a weighted sum. Every rule only adds; the score never decreases when an
// extra condition triggers.
func ScoreRisk(note *Note, signals []Signal) RiskAssessment {
	score := 0
	factors := []string{}

	switch note.Subjective.Severity {
	case SeveritySevere:
		score += 3
		factors = append(factors, "Severe symptom severity reported")
	case SeverityModerate:
		score += 2
		factors = append(factors, "Moderate symptom severity")
	}

	hasCritical := false
	for _, s := range note.Subjective.Symptoms {
		for _, cs := range criticalSymptoms {
			if strings.Contains(s, cs) {
				hasCritical = true
			}
		}
	}
	if hasCritical {
		score += 5
		factors = append(factors, "Critical symptoms present")
	}

	criticalCount := 0
	for _, sig := range signals {
		if sig.Type == SignalCritical {
			criticalCount++
		}
	}
	score += criticalCount * 2
	if criticalCount > 0 {
		factors = append(factors, fmt.Sprintf("%d critical clinical patterns detected", criticalCount))
	}

	if anySignalContains(signals, "worsening") {
		score += 2
		factors = append(factors, "Progressive worsening noted")
	}
	if anySignalContains(signals, "Functional impairment") {
		score += 2
		factors = append(factors, "Impact on daily function")
	}

	level, urgency := riskLevel(score)

	return RiskAssessment{
		Score:      score,
		Level:      level,
		Urgency:    urgency,
		Factors:    factors,
		Disclaimer: riskDisclaimer,
	}
}

func anySignalContains(signals []Signal, substr string) bool {
	for _, s := range signals {
		if strings.Contains(s.Signal, substr) {
			return true
		}
	}
	return false
}

func riskLevel(score int) (RiskLevel, string) {
	switch {
	case score >= 8:
		return RiskCritical, "IMMEDIATE attention recommended"
	case score >= 5:
		return RiskHigh, "Priority assessment recommended"
	case score >= 3:
		return RiskMedium, "Standard care pathway"
	}
	return RiskLow, "Routine consultation"
}

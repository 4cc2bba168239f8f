package soap

import (
	"regexp"
	"strings"
)

const emotionDisclaimer = "Heuristic-based flagging only - not psychological assessment"

var stressWords = []string{"worried", "scared", "can't", "terrible", "unbearable", "afraid", "anxious"}

var (
	severityLanguageRe = regexp.MustCompile(`(?i)severe|unbearable|worst|excruciating`)
	desperationRe      = regexp.MustCompile(`(?i)please help|desperate|can't take it`)
	worseningPainRe    = regexp.MustCompile(`(?i)getting worse|can't bear|killing me`)
)

// AnalyzeEmotion scores distress vocabulary in the raw transcript. It is
// independent of the clinical signal battery even where the vocabularies
// overlap.
func AnalyzeEmotion(transcript string) EmotionAnalysis {
	text := strings.ToLower(transcript)

	analysis := EmotionAnalysis{
		StressLevel: StressNormal,
		Indicators:  []string{},
		Disclaimer:  emotionDisclaimer,
	}

	for _, word := range stressWords {
		if strings.Contains(text, word) {
			analysis.DistressScore += 2
		}
	}

	if severityLanguageRe.MatchString(text) {
		analysis.Indicators = append(analysis.Indicators, "High-severity language detected")
		analysis.DistressScore += 3
	}
	if desperationRe.MatchString(text) {
		analysis.Indicators = append(analysis.Indicators, "Potential distress indicators")
		analysis.DistressScore += 4
	}
	if worseningPainRe.MatchString(text) {
		analysis.Indicators = append(analysis.Indicators, "Progressive symptom worsening language")
		analysis.DistressScore += 2
	}

	switch {
	case analysis.DistressScore >= 7:
		analysis.StressLevel = StressCritical
		analysis.Recommendation = "Patient shows potential signs of severe distress - consider prioritization"
	case analysis.DistressScore >= 4:
		analysis.StressLevel = StressHigh
		analysis.Recommendation = "Potential significant patient distress - consider prioritization"
	case analysis.DistressScore >= 2:
		analysis.StressLevel = StressModerate
		analysis.Recommendation = "Monitor patient emotional state"
	}

	return analysis
}

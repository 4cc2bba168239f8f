package soap

import (
	"regexp"
	"strings"
)

// A contradictionRule fires only when both the affirmative and the
// negating pattern match the same transcript. This is a co-occurrence
// heuristic, not a negation parser: "no fever, but cough" mentioning
// unrelated concepts will still trip the fever rule. Known limitation.
type contradictionRule struct {
	affirm *regexp.Regexp
	negate *regexp.Regexp
	issue  ConsistencyIssue
}

var contradictionRules = []contradictionRule{
	{
		affirm: regexp.MustCompile(`(?i)fever|temperature|hot|chills`),
		negate: regexp.MustCompile(`(?i)no fever|no temperature|afebrile`),
		issue: ConsistencyIssue{
			Severity:   IssueHigh,
			Type:       "Contradiction",
			Issue:      "Conflicting fever information",
			Context:    "Patient both mentioned having fever and denied fever",
			Suggestion: "Clarify current fever status and obtain temperature measurement",
		},
	},
	{
		affirm: regexp.MustCompile(`(?i)pain|hurt|ache`),
		negate: regexp.MustCompile(`(?i)no pain|pain free|doesn't hurt`),
		issue: ConsistencyIssue{
			Severity:   IssueMedium,
			Type:       "Contradiction",
			Issue:      "Conflicting pain information",
			Context:    "Contradictory statements about pain presence",
			Suggestion: "Verify exact location and nature of pain",
		},
	},
	{
		affirm: regexp.MustCompile(`(?i)taking.*medicine|on medication|prescribed`),
		negate: regexp.MustCompile(`(?i)no medicine|not taking|no medication`),
		issue: ConsistencyIssue{
			Severity:   IssueHigh,
			Type:       "Medication Conflict",
			Issue:      "Unclear medication history",
			Context:    "Conflicting information about current medications",
			Suggestion: "Obtain complete and accurate medication list",
		},
	},
	{
		affirm: regexp.MustCompile(`(?i)today|yesterday|this morning`),
		negate: regexp.MustCompile(`(?i)weeks ago|months ago|long time`),
		issue: ConsistencyIssue{
			Severity:   IssueMedium,
			Type:       "Timeline Inconsistency",
			Issue:      "Unclear symptom timeline",
			Context:    "Multiple different time references provided",
			Suggestion: "Establish clear chronological sequence of events",
		},
	},
}

// CheckConsistency applies the contradiction rules to the raw transcript.
func CheckConsistency(transcript string) []ConsistencyIssue {
	text := strings.ToLower(transcript)
	issues := []ConsistencyIssue{}
	for _, rule := range contradictionRules {
		if rule.affirm.MatchString(text) && rule.negate.MatchString(text) {
			issues = append(issues, rule.issue)
		}
	}
	return issues
}

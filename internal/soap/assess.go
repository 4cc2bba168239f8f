package soap

import "strings"

const defaultObservation = "Patient presents with non-specific complaints"

// GenerateQuestions builds the clarifying-questions list for the doctor
// from the extracted symptoms plus two negative checks on the working
// text (medication, allergy).
func GenerateQuestions(symptoms []string, text string) []string {
	questions := []string{}

	if containsString(symptoms, "Fever") {
		questions = append(questions,
			"Have you measured your temperature?",
			"Any chills, sweating, or rigors?")
	}
	if containsString(symptoms, "Headache") {
		questions = append(questions,
			"Rate pain severity 1-10?",
			"Location: frontal/temporal/occipital?",
			"Any visual disturbances or nausea?")
	}
	if containsString(symptoms, "Cough") {
		questions = append(questions,
			"Dry or productive (with phlegm)?",
			"Any blood in sputum?")
	}
	if containsString(symptoms, "Stomach pain") {
		questions = append(questions,
			"Exact location in abdomen?",
			"Relation to meals?",
			"Any vomiting or diarrhea?")
	}
	if containsString(symptoms, "Chest pain") {
		questions = append(questions,
			"⚠️ URGENT: Radiation to arm/jaw?",
			"⚠️ Any shortness of breath?",
			"⚠️ Immediate ECG needed")
	}

	if !strings.Contains(text, "medicine") && !strings.Contains(text, "tablet") && !strings.Contains(text, "dawa") {
		questions = append(questions, "Any medications already taken?")
	}
	if !strings.Contains(text, "allergy") {
		questions = append(questions, "Known drug allergies?")
	}

	if len(questions) == 0 {
		return []string{"Complete medical history needed"}
	}
	return questions
}

// GenerateObservations builds the assessment observations from symptoms,
// severity, and detected signals. Never returns an empty list: with no
// symptoms at all it degrades to a single non-specific-complaint line,
// otherwise it always closes with the pending-review placeholder.
func GenerateObservations(symptoms []string, severity string, signals []Signal) []string {
	observations := []string{}

	if len(symptoms) == 0 {
		return []string{defaultObservation}
	}

	if containsAll(symptoms, "Fever", "Cough") {
		observations = append(observations, "Clinical picture consistent with upper respiratory tract infection")
	}
	if containsAll(symptoms, "Fever", "Body ache") {
		observations = append(observations, "Viral syndrome under consideration")
	}
	if containsString(symptoms, "Chest pain") {
		observations = append(observations, "URGENT: Chest pain requires immediate cardiac evaluation")
	}
	if containsString(symptoms, "Breathing difficulty") {
		observations = append(observations, "URGENT: Respiratory distress - priority assessment required")
	}
	if severity == SeveritySevere {
		observations = append(observations, "Severe symptoms reported - prioritize assessment")
	}
	for _, s := range signals {
		if s.Type == SignalCritical {
			observations = append(observations, "Critical clinical signals detected - see AI analysis above")
			break
		}
	}

	observations = append(observations, "Differential diagnosis pending physician review and examination")

	return observations
}

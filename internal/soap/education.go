package soap

// GenerateEducation emits a fixed bilingual content block when the
// extracted symptoms match a known combination. It is a lookup table, not
// a generative step; extending it means adding more combination entries.
// No match leaves every field blank.
func GenerateEducation(symptoms []string, language string) Education {
	education := Education{
		WhatToDo:     []string{},
		WhatToAvoid:  []string{},
		WhenToReturn: []string{},
		Language:     language,
	}

	// Fever + Cough: likely upper respiratory tract infection.
	if containsAll(symptoms, "Fever", "Cough") {
		if language == LanguageHindi {
			education.Condition = "संभावित श्वसन संक्रमण"
			education.Explanation = "यह वायरस या बैक्टीरिया के कारण होता है और आमतौर पर 5-7 दिनों में ठीक हो जाता है।"
			education.WhatToDo = []string{
				"डॉक्टर द्वारा निर्धारित दवाएं नियमित रूप से लें",
				"खूब पानी और तरल पदार्थ पिएं",
				"पर्याप्त आराम करें",
				"गर्म तरल पदार्थ (सूप, चाय) लें",
			}
			education.WhatToAvoid = []string{
				"ठंडे पेय और आइसक्रीम से बचें",
				"धूम्रपान न करें",
				"भारी व्यायाम से बचें",
			}
			education.WhenToReturn = []string{
				"बुखार 3 दिन से अधिक रहे",
				"सांस लेने में कठिनाई हो",
				"लक्षणों में सुधार न हो",
			}
		} else {
			education.Condition = "Likely Upper Respiratory Tract Infection"
			education.Explanation = "This is commonly caused by viruses or bacteria and typically resolves in 5-7 days with proper care."
			education.WhatToDo = []string{
				"Take prescribed medications regularly",
				"Drink plenty of fluids (8-10 glasses daily)",
				"Get adequate rest and sleep",
				"Consume warm liquids (soup, tea)",
			}
			education.WhatToAvoid = []string{
				"Avoid cold drinks and ice cream",
				"No smoking",
				"Avoid strenuous exercise",
			}
			education.WhenToReturn = []string{
				"Fever persists beyond 3 days",
				"Breathing difficulty develops",
				"No improvement with medication",
			}
		}
	}

	return education
}

func containsAll(haystack []string, wanted ...string) bool {
	for _, w := range wanted {
		if !containsString(haystack, w) {
			return false
		}
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

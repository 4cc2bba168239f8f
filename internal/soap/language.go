package soap

// DetectLanguage classifies a transcript as Hindi or English by script
// inspection: any rune in the Devanagari block means Hindi. Mixed-script
// text therefore counts as Hindi, which is what we want for code-switched
// speech.
func DetectLanguage(text string) string {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return LanguageHindi
		}
	}
	return LanguageEnglish
}

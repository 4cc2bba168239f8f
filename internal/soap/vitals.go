package soap

import (
	"strconv"
	"strings"
)

// VitalsPlaceholder is shown when no vitals were recorded at all.
const VitalsPlaceholder = "To be filled by vitals desk"

// Vitals is the optional measurement record captured at the vitals desk.
// Nil means "not recorded", never zero. BMI is computed upstream from
// height and weight and passed through unmodified.
type Vitals struct {
	Height                 *float64 `json:"height,omitempty"`
	Weight                 *float64 `json:"weight,omitempty"`
	Temperature            *float64 `json:"temperature,omitempty"`
	BloodPressureSystolic  *float64 `json:"bloodPressureSystolic,omitempty"`
	BloodPressureDiastolic *float64 `json:"bloodPressureDiastolic,omitempty"`
	PulseRate              *float64 `json:"pulseRate,omitempty"`
	RespiratoryRate        *float64 `json:"respiratoryRate,omitempty"`
	OxygenSaturation       *float64 `json:"oxygenSaturation,omitempty"`
	BMI                    *float64 `json:"bmi,omitempty"`
}

// Display renders the recorded fields as labeled segments joined by " | ".
// Absent fields are omitted; a fully empty record yields the placeholder.
func (v Vitals) Display() string {
	parts := []string{}

	if v.Temperature != nil {
		parts = append(parts, "Temp: "+formatVital(*v.Temperature)+"°F")
	}
	if v.BloodPressureSystolic != nil && v.BloodPressureDiastolic != nil {
		parts = append(parts, "BP: "+formatVital(*v.BloodPressureSystolic)+"/"+formatVital(*v.BloodPressureDiastolic)+" mmHg")
	}
	if v.PulseRate != nil {
		parts = append(parts, "HR: "+formatVital(*v.PulseRate)+" bpm")
	}
	if v.RespiratoryRate != nil {
		parts = append(parts, "RR: "+formatVital(*v.RespiratoryRate)+" /min")
	}
	if v.OxygenSaturation != nil {
		parts = append(parts, "SpO2: "+formatVital(*v.OxygenSaturation)+"%")
	}
	if v.Height != nil && v.Weight != nil {
		parts = append(parts, "Ht: "+formatVital(*v.Height)+"cm, Wt: "+formatVital(*v.Weight)+"kg")
	}
	if v.BMI != nil {
		parts = append(parts, "BMI: "+formatVital(*v.BMI))
	}

	if len(parts) == 0 {
		return VitalsPlaceholder
	}
	return strings.Join(parts, " | ")
}

func formatVital(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

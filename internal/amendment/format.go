package amendment

// NotAvailable labels an absent code.
const NotAvailable = "N/A"

var amendmentTypeLabels = map[string]string{
	"1": "New enactment",
	"2": "Full revision",
	"3": "Law being amended",
	"4": "Partial-amendment supplementary provision",
	"8": "Repeal",
}

var missionLabels = map[string]string{
	"New":     "New enactment / law being amended",
	"Partial": "Partial amendment",
}

// FormatAmendmentType returns the display label of an amendment type code.
func FormatAmendmentType(code string) string {
	if code == "" {
		return NotAvailable
	}
	if label, ok := amendmentTypeLabels[code]; ok {
		return label
	}
	return "other(" + code + ")"
}

// FormatMission returns the display label of a mission code. Unknown codes
// pass through unchanged.
func FormatMission(code string) string {
	if code == "" {
		return NotAvailable
	}
	if label, ok := missionLabels[code]; ok {
		return label
	}
	return code
}

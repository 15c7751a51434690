package amendment

import (
	"time"

	"lawsearch/internal/egov"
	dErrors "lawsearch/pkg/domain-errors"
)

// DateLayout is the fixed-width ISO date used by the registry. Values in this
// layout order lexically the same way they order chronologically.
const DateLayout = "2006-01-02"

// Record is one law at its current revision, flattened from a registry page.
// Optional fields are empty when the registry omits them.
type Record struct {
	LawID                    string `json:"law_id"`
	LawNum                   string `json:"law_num"`
	LawRevisionID            string `json:"law_revision_id"`
	LawTitle                 string `json:"law_title"`
	LawType                  string `json:"law_type"`
	Category                 string `json:"category,omitempty"`
	AmendmentPromulgateDate  string `json:"amendment_promulgate_date,omitempty"`
	AmendmentEnforcementDate string `json:"amendment_enforcement_date,omitempty"`
	AmendmentLawID           string `json:"amendment_law_id,omitempty"`
	AmendmentLawTitle        string `json:"amendment_law_title,omitempty"`
	AmendmentLawNum          string `json:"amendment_law_num,omitempty"`
	AmendmentType            string `json:"amendment_type,omitempty"`
	Mission                  string `json:"mission,omitempty"`
	Updated                  string `json:"updated"`
}

// RecordFromLaw projects a nested registry entry into a Record.
func RecordFromLaw(law egov.Law) Record {
	info, rev := law.LawInfo, law.RevisionInfo
	return Record{
		LawID:                    info.LawID,
		LawNum:                   info.LawNum,
		LawRevisionID:            rev.LawRevisionID,
		LawTitle:                 rev.LawTitle,
		LawType:                  rev.LawType,
		Category:                 rev.Category,
		AmendmentPromulgateDate:  rev.AmendmentPromulgateDate,
		AmendmentEnforcementDate: rev.AmendmentEnforcementDate,
		AmendmentLawID:           rev.AmendmentLawID,
		AmendmentLawTitle:        rev.AmendmentLawTitle,
		AmendmentLawNum:          rev.AmendmentLawNum,
		AmendmentType:            rev.AmendmentType,
		Mission:                  rev.Mission,
		Updated:                  rev.Updated,
	}
}

// AmendedWithin reports whether the promulgation or the enforcement date lies
// in [from, to]. Bounds are inclusive; absent dates never match.
func (r Record) AmendedWithin(from, to string) bool {
	return dateWithin(r.AmendmentPromulgateDate, from, to) ||
		dateWithin(r.AmendmentEnforcementDate, from, to)
}

func dateWithin(date, from, to string) bool {
	return date != "" && date >= from && date <= to
}

// Criteria selects amendments. DateFrom <= DateTo is expected but not checked.
type Criteria struct {
	DateFrom      string
	DateTo        string
	CategoryCodes []string // OR-matched by the registry
	LawTitle      string   // substring-matched by the registry
}

// Validate rejects criteria without a usable date range.
func (c Criteria) Validate() error {
	if c.DateFrom == "" || c.DateTo == "" {
		return dErrors.New(dErrors.CodeValidation, "date_from and date_to are required")
	}
	if _, err := time.Parse(DateLayout, c.DateFrom); err != nil {
		return dErrors.New(dErrors.CodeValidation, "date_from must be formatted as YYYY-MM-DD")
	}
	if _, err := time.Parse(DateLayout, c.DateTo); err != nil {
		return dErrors.New(dErrors.CodeValidation, "date_to must be formatted as YYYY-MM-DD")
	}
	return nil
}

// RevisionFilter narrows a revision history by promulgation date.
type RevisionFilter struct {
	PromulgateFrom string
	PromulgateTo   string
}

// Validate checks that any bound given is a well-formed date.
func (f RevisionFilter) Validate() error {
	bounds := []struct{ name, value string }{
		{"date_from", f.PromulgateFrom},
		{"date_to", f.PromulgateTo},
	}
	for _, b := range bounds {
		if b.value == "" {
			continue
		}
		if _, err := time.Parse(DateLayout, b.value); err != nil {
			return dErrors.New(dErrors.CodeValidation, b.name+" must be formatted as YYYY-MM-DD")
		}
	}
	return nil
}

package egov

import "encoding/json"

// LawInfo is the identity block of a law.
type LawInfo struct {
	LawID            string `json:"law_id"`
	LawNum           string `json:"law_num"`
	LawNumEra        string `json:"law_num_era,omitempty"`
	LawNumYear       int    `json:"law_num_year,omitempty"`
	LawNumType       string `json:"law_num_type,omitempty"`
	LawNumNum        string `json:"law_num_num,omitempty"`
	PromulgationDate string `json:"promulgation_date,omitempty"`
}

// RevisionInfo describes one revision of a law. Dates are ISO YYYY-MM-DD
// strings and empty when the registry omits them.
type RevisionInfo struct {
	LawRevisionID                     string `json:"law_revision_id"`
	LawType                           string `json:"law_type"`
	LawTitle                          string `json:"law_title"`
	LawTitleKana                      string `json:"law_title_kana,omitempty"`
	Abbrev                            string `json:"abbrev,omitempty"`
	Category                          string `json:"category,omitempty"`
	Updated                           string `json:"updated"`
	AmendmentPromulgateDate           string `json:"amendment_promulgate_date,omitempty"`
	AmendmentEnforcementDate          string `json:"amendment_enforcement_date,omitempty"`
	AmendmentEnforcementComment       string `json:"amendment_enforcement_comment,omitempty"`
	AmendmentScheduledEnforcementDate string `json:"amendment_scheduled_enforcement_date,omitempty"`
	AmendmentLawID                    string `json:"amendment_law_id,omitempty"`
	AmendmentLawTitle                 string `json:"amendment_law_title,omitempty"`
	AmendmentLawTitleKana             string `json:"amendment_law_title_kana,omitempty"`
	AmendmentLawNum                   string `json:"amendment_law_num,omitempty"`
	AmendmentType                     string `json:"amendment_type,omitempty"`
	RepealStatus                      string `json:"repeal_status,omitempty"`
	RepealDate                        string `json:"repeal_date,omitempty"`
	RemainInForce                     *bool  `json:"remain_in_force,omitempty"`
	Mission                           string `json:"mission,omitempty"`
	CurrentRevisionStatus             string `json:"current_revision_status,omitempty"`
}

// Law is one entry of a /laws page.
type Law struct {
	LawInfo             LawInfo       `json:"law_info"`
	RevisionInfo        RevisionInfo  `json:"revision_info"`
	CurrentRevisionInfo *RevisionInfo `json:"current_revision_info,omitempty"`
}

// LawsResponse is one page of /laws.
type LawsResponse struct {
	Laws       []Law `json:"laws"`
	TotalCount int   `json:"total_count"`
	Offset     int   `json:"offset"`
	Limit      int   `json:"limit"`
}

// LawRevisionsResponse is the revision history of one law. Raw holds the
// body exactly as the registry sent it, including keys not modelled here.
type LawRevisionsResponse struct {
	LawInfo   LawInfo         `json:"law_info"`
	Revisions []RevisionInfo  `json:"revisions"`
	Raw       json.RawMessage `json:"-"`
}

// LawDataResponse carries the full text of a revision. The text tree is kept
// as raw JSON; Raw holds the whole body as the registry sent it.
type LawDataResponse struct {
	LawInfo      LawInfo         `json:"law_info"`
	RevisionInfo RevisionInfo    `json:"revision_info"`
	LawFullText  json.RawMessage `json:"law_full_text"`
	Raw          json.RawMessage `json:"-"`
}

// ListLawsParams are the /laws query parameters this service uses.
type ListLawsParams struct {
	Limit         int
	Offset        int
	CategoryCodes []string
	LawTitle      string
}

// RevisionParams narrow a revision history by promulgation date.
type RevisionParams struct {
	PromulgateDateFrom string
	PromulgateDateTo   string
}

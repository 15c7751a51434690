package handler

import (
	"encoding/json"

	"lawsearch/internal/amendment"
	"lawsearch/internal/egov"
)

// AmendmentResponse is a search result with display labels attached.
type AmendmentResponse struct {
	amendment.Record
	AmendmentTypeLabel string `json:"amendment_type_label"`
	MissionLabel       string `json:"mission_label"`
}

// SearchResponse is the body of GET /api/laws.
type SearchResponse struct {
	Amendments []AmendmentResponse `json:"amendments"`
	Count      int                 `json:"count"`
}

// CategoriesResponse is the body of GET /api/categories.
type CategoriesResponse struct {
	Categories []amendment.Category `json:"categories"`
}

func toSearchResponse(records []amendment.Record) SearchResponse {
	out := SearchResponse{
		Amendments: make([]AmendmentResponse, 0, len(records)),
		Count:      len(records),
	}
	for _, r := range records {
		out.Amendments = append(out.Amendments, AmendmentResponse{
			Record:             r,
			AmendmentTypeLabel: amendment.FormatAmendmentType(r.AmendmentType),
			MissionLabel:       amendment.FormatMission(r.Mission),
		})
	}
	return out
}

// labelRevisions returns the registry body of a revision history with
// amendment_type_label and mission_label added to each revision. Every other
// key is kept as the registry sent it.
func labelRevisions(resp *egov.LawRevisionsResponse) ([]byte, error) {
	raw := resp.Raw
	if len(raw) == 0 {
		var err error
		if raw, err = json.Marshal(resp); err != nil {
			return nil, err
		}
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	var revisions []map[string]json.RawMessage
	if rawRevisions, ok := body["revisions"]; ok {
		if err := json.Unmarshal(rawRevisions, &revisions); err != nil {
			return nil, err
		}
	}

	for _, rev := range revisions {
		var codes struct {
			AmendmentType string `json:"amendment_type"`
			Mission       string `json:"mission"`
		}
		if err := remarshal(rev, &codes); err != nil {
			return nil, err
		}
		rev["amendment_type_label"], _ = json.Marshal(amendment.FormatAmendmentType(codes.AmendmentType))
		rev["mission_label"], _ = json.Marshal(amendment.FormatMission(codes.Mission))
	}

	if revisions == nil {
		revisions = []map[string]json.RawMessage{}
	}
	encoded, err := json.Marshal(revisions)
	if err != nil {
		return nil, err
	}
	body["revisions"] = encoded
	return json.Marshal(body)
}

func remarshal(in map[string]json.RawMessage, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

package handler

import (
	"net/http"
	"strings"

	"lawsearch/internal/amendment"
	pkgstrings "lawsearch/pkg/platform/strings"
)

func queryValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func parseSearchRequest(r *http.Request) amendment.Criteria {
	return amendment.Criteria{
		DateFrom:      queryValue(r, "date_from"),
		DateTo:        queryValue(r, "date_to"),
		CategoryCodes: pkgstrings.SplitList(r.URL.Query().Get("categories"), ","),
		LawTitle:      queryValue(r, "law_title"),
	}
}

func parseRevisionsRequest(r *http.Request) (string, amendment.RevisionFilter) {
	return queryValue(r, "law_id"), amendment.RevisionFilter{
		PromulgateFrom: queryValue(r, "date_from"),
		PromulgateTo:   queryValue(r, "date_to"),
	}
}

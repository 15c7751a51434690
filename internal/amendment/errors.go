package amendment

import (
	"errors"
	"fmt"
	"time"
)

// ErrPageLimitExceeded is returned when the registry keeps reporting more
// results after the configured maximum number of pages.
var ErrPageLimitExceeded = errors.New("page limit exceeded")

// UpstreamError reports a failed registry call. Page is 1-based for paged
// listings and 0 otherwise; Elapsed is measured from the start of the
// operation, not of the failing call.
type UpstreamError struct {
	Op      string
	Page    int
	Elapsed time.Duration
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("%s failed on page %d after %s: %v", e.Op, e.Page, e.Elapsed.Round(time.Millisecond), e.Err)
	}
	return fmt.Sprintf("%s failed after %s: %v", e.Op, e.Elapsed.Round(time.Millisecond), e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

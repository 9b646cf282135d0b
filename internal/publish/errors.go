package publish

import (
	"fmt"

	"github.com/isports/aflstats/internal/model"
)

// ValidationError reports a publish attempt the match's current state does
// not allow. Recoverable: nothing changes, the caller fixes the match.
type ValidationError struct {
	MatchID int64
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cannot publish match %d: %s", e.MatchID, e.Reason)
}

// ResolutionError reports a derived field with no catalog leaf. Fatal to the
// publish: the transaction is never started and nothing persists.
type ResolutionError struct {
	Subject model.SubjectType
	Alias   string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("derived %s field %q has no catalog metric", e.Subject, e.Alias)
}

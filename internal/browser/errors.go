package browser

import (
	"context"
	"errors"
	"time"
)

// ErrNoCandidateMatched is returned by FirstDisplayed when none of the
// candidate selectors resolve to a rendered element.
var ErrNoCandidateMatched = errors.New("no candidate selector matched a displayed element")

// defaultActionTimeout bounds the implicit lookup inside actions that do not
// take their own timeout.
const defaultActionTimeout = 5 * time.Second

// IsTimeout reports whether err is a bounded-wait expiry.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// probeOutcome classifies the result of a bounded presence probe. A child
// deadline on a live session is the ordinary "not there"; once the session
// context itself is done, cancellation propagates instead.
func (s *Session) probeOutcome(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if IsTimeout(err) && s.ctx.Err() == nil {
		return false, nil
	}
	return false, err
}

package leave

import (
	"strings"
	"time"

	"leavedesk/internal/calendar"
	leaveerrors "leavedesk/internal/leave/errors"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// DefaultAnnualAllotment is the fallback yearly allowance in working days.
const DefaultAnnualAllotment = 10

// Policy holds the leave rules: the working-day calendar and the annual
// allotment. It is pure computation over caller-supplied data; persistence
// and locking belong to the service wrapping it. Concurrent submissions for
// the same employee must be serialized by the caller or balances can be
// over-committed.
type Policy struct {
	cal       *calendar.Calendar
	allotment int
}

// NewPolicy builds a Policy. A non-positive allotment falls back to
// DefaultAnnualAllotment.
func NewPolicy(cal *calendar.Calendar, allotment int) *Policy {
	if allotment <= 0 {
		allotment = DefaultAnnualAllotment
	}
	return &Policy{cal: cal, allotment: allotment}
}

// Allotment returns the configured annual allowance in working days.
func (p *Policy) Allotment() int {
	return p.allotment
}

// RemainingBalance is the allotment minus the working days consumed by
// APPROVED requests. PENDING and REJECTED requests never reduce balance.
// The result is not clamped; a negative value signals inconsistent
// upstream data and is reported as-is.
func (p *Policy) RemainingBalance(requests []LeaveRequest) int {
	consumed := 0
	for _, r := range requests {
		if r.Status == StatusApproved {
			consumed += p.cal.CountWorkingDays(r.StartDate, r.EndDate)
		}
	}
	return p.allotment - consumed
}

// ValidateSubmission checks a candidate request against the submission
// rules, in order, stopping at the first failure. On success it returns
// the parsed range and its working-day duration.
func (p *Policy) ValidateSubmission(
	startDate, endDate, reason string,
	existing []LeaveRequest,
) (start, end time.Time, duration int, err error) {
	if startDate == "" || endDate == "" {
		return time.Time{}, time.Time{}, 0, leaveerrors.ErrMissingDates
	}

	start, err = calendar.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, 0, err
	}
	end, err = calendar.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, 0, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidRange
	}

	duration = p.cal.CountWorkingDays(start, end)
	if duration <= 0 {
		return time.Time{}, time.Time{}, 0, leaveerrors.ErrZeroWorkingDays
	}

	remaining := p.RemainingBalance(existing)
	if duration > remaining {
		return time.Time{}, time.Time{}, 0, leaveerrors.InsufficientBalance(remaining, duration)
	}

	if strings.TrimSpace(reason) == "" {
		return time.Time{}, time.Time{}, 0, leaveerrors.ErrMissingReason
	}

	return start, end, duration, nil
}

// Approve transitions a PENDING request to APPROVED. Terminal statuses
// never transition again.
func Approve(l *LeaveRequest) error {
	if l.Status != StatusPending {
		return leaveerrors.ErrAlreadyDecided
	}
	l.Status = StatusApproved
	l.Feedback = nil
	return nil
}

// Reject transitions a PENDING request to REJECTED, storing the manager's
// feedback verbatim. Feedback is mandatory.
func Reject(l *LeaveRequest, feedback string) error {
	if l.Status != StatusPending {
		return leaveerrors.ErrAlreadyDecided
	}
	if strings.TrimSpace(feedback) == "" {
		return leaveerrors.ErrFeedbackRequired
	}
	l.Status = StatusRejected
	l.Feedback = &feedback
	return nil
}

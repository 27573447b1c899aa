package service

import (
	"time"

	"github.com/Astemirdum/lms-service/lms/internal/errs"
	"github.com/Astemirdum/lms-service/lms/internal/model"
)

const (
	day = 24 * time.Hour

	loanPeriod      = 14 * day
	issuePeriod     = 7 * day
	borrowCooldown  = 2 * day
	softBorrowLimit = 2
	finePerDay      = 10
)

type borrowDecision int

const (
	decisionBorrow borrowDecision = iota
	decisionRequest
)

// decideBorrow checks the borrow rules in order. With escalate set, a user at the soft
// limit gets a request for approval instead of a loan.
func decideBorrow(st model.BorrowState, now time.Time, escalate bool) (borrowDecision, error) {
	if !st.BookExists {
		return 0, errs.ErrBookNotFound
	}
	if st.Available <= 0 {
		return 0, errs.ErrNoCopies
	}
	if st.HasActive {
		return 0, errs.ErrAlreadyBorrowed
	}
	if st.LastReturnedAt != nil && now.Sub(*st.LastReturnedAt) < borrowCooldown {
		return 0, errs.ErrCooldown
	}
	if escalate && st.ActiveCount >= softBorrowLimit {
		if st.HasPendingRequest {
			return 0, errs.ErrRequestPending
		}
		return decisionRequest, nil
	}
	return decisionBorrow, nil
}

// daysOverdue counts whole days past due, zero if not late.
func daysOverdue(due, at time.Time) int {
	if !at.After(due) {
		return 0
	}
	return int(at.Sub(due) / day)
}

func fine(due, at time.Time) int {
	return daysOverdue(due, at) * finePerDay
}

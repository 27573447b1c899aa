package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/lms-service/lms/internal/errs"
	"github.com/Astemirdum/lms-service/lms/internal/model"
)

func TestFine(t *testing.T) {
	t.Parallel()
	due := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		at       time.Time
		wantDays int
		wantFine int
	}{
		{name: "before due", at: due.Add(-day), wantDays: 0, wantFine: 0},
		{name: "on due", at: due, wantDays: 0, wantFine: 0},
		{name: "few hours late", at: due.Add(5 * time.Hour), wantDays: 0, wantFine: 0},
		{name: "three days late", at: time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), wantDays: 3, wantFine: 30},
		{name: "partial day rounds down", at: due.Add(36 * time.Hour), wantDays: 1, wantFine: 10},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.wantDays, daysOverdue(due, tt.at))
			require.Equal(t, tt.wantFine, fine(due, tt.at))
		})
	}
}

func TestDecideBorrow(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-day)
	lastWeek := now.Add(-7 * day)

	tests := []struct {
		name     string
		st       model.BorrowState
		escalate bool
		want     borrowDecision
		wantErr  error
	}{
		{
			name: "ok",
			st:   model.BorrowState{BookExists: true, Available: 1},
			want: decisionBorrow,
		},
		{
			name:    "book missing",
			st:      model.BorrowState{},
			wantErr: errs.ErrBookNotFound,
		},
		{
			name:    "no copies",
			st:      model.BorrowState{BookExists: true, Available: 0},
			wantErr: errs.ErrNoCopies,
		},
		{
			name:    "already borrowed",
			st:      model.BorrowState{BookExists: true, Available: 2, HasActive: true},
			wantErr: errs.ErrAlreadyBorrowed,
		},
		{
			name:    "returned yesterday",
			st:      model.BorrowState{BookExists: true, Available: 2, LastReturnedAt: &yesterday},
			wantErr: errs.ErrCooldown,
		},
		{
			name: "returned last week",
			st:   model.BorrowState{BookExists: true, Available: 2, LastReturnedAt: &lastWeek},
			want: decisionBorrow,
		},
		{
			name:     "at soft limit",
			st:       model.BorrowState{BookExists: true, Available: 2, ActiveCount: softBorrowLimit},
			escalate: true,
			want:     decisionRequest,
		},
		{
			name:     "at soft limit with request pending",
			st:       model.BorrowState{BookExists: true, Available: 2, ActiveCount: 3, HasPendingRequest: true},
			escalate: true,
			wantErr:  errs.ErrRequestPending,
		},
		{
			name: "admin desk ignores soft limit",
			st:   model.BorrowState{BookExists: true, Available: 2, ActiveCount: 5},
			want: decisionBorrow,
		},
		{
			name:     "checks run before the limit",
			st:       model.BorrowState{BookExists: true, Available: 0, ActiveCount: 5},
			escalate: true,
			wantErr:  errs.ErrNoCopies,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := decideBorrow(tt.st, now, tt.escalate)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

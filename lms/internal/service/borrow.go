package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/Astemirdum/lms-service/lms/internal/errs"
	"github.com/Astemirdum/lms-service/lms/internal/model"
	"github.com/Astemirdum/lms-service/pkg/kafka"
)

const defaultRequestNote = "No note provided"

// Borrow lends a book to the user, or files a request for approval once the user holds
// softBorrowLimit books.
func (s *Service) Borrow(ctx context.Context, userID int, in model.BorrowInput) (model.BorrowResult, error) {
	st, err := s.repo.BorrowState(ctx, userID, in.BookID)
	if err != nil {
		return model.BorrowResult{}, errors.Wrap(err, "BorrowState")
	}
	now := s.now()
	decision, err := decideBorrow(st, now, true)
	if err != nil {
		return model.BorrowResult{}, err
	}

	if decision == decisionRequest {
		note := in.RequestNote
		if note == "" {
			note = defaultRequestNote
		}
		req, err := s.repo.CreateBookRequest(ctx, model.BookRequest{
			UserID:      userID,
			BookID:      in.BookID,
			RequestNote: note,
			RequestDate: now,
		})
		if err != nil {
			return model.BorrowResult{}, errors.Wrap(err, "CreateBookRequest")
		}
		s.emit(ctx, kafka.EntityBook, in.BookID, actionRequest, userID, "request %d", req.ID)
		return model.BorrowResult{
			Message: fmt.Sprintf("You already have %d books borrowed. Your request has been sent to the admin for approval.",
				st.ActiveCount),
			RequiresApproval: true,
			Request:          &req,
		}, nil
	}

	t, err := s.repo.CreateTransaction(ctx, model.Transaction{
		UserID:    userID,
		BookID:    in.BookID,
		IssueDate: now,
		DueDate:   now.Add(loanPeriod),
	})
	if err != nil {
		return model.BorrowResult{}, errors.Wrap(err, "CreateTransaction")
	}
	s.emit(ctx, kafka.EntityBook, in.BookID, actionBorrow, userID, "transaction %d", t.ID)
	return model.BorrowResult{
		Message:     "Book borrowed successfully",
		Transaction: &t,
	}, nil
}

// IssueBook is the admin desk path: no soft limit, due date chosen by the admin.
func (s *Service) IssueBook(ctx context.Context, adminID int, in model.IssueInput) (model.Transaction, error) {
	st, err := s.repo.BorrowState(ctx, in.UserID, in.BookID)
	if err != nil {
		return model.Transaction{}, errors.Wrap(err, "BorrowState")
	}
	now := s.now()
	if _, err := decideBorrow(st, now, false); err != nil {
		return model.Transaction{}, err
	}
	if _, err := s.repo.GetUser(ctx, in.UserID); err != nil {
		return model.Transaction{}, errors.Wrap(err, "GetUser")
	}

	due := now.Add(issuePeriod)
	if in.DueDate != nil {
		due = *in.DueDate
	}
	t, err := s.repo.CreateTransaction(ctx, model.Transaction{
		UserID:    in.UserID,
		BookID:    in.BookID,
		IssueDate: now,
		DueDate:   due,
	})
	if err != nil {
		return model.Transaction{}, errors.Wrap(err, "CreateTransaction")
	}
	s.emit(ctx, kafka.EntityBook, in.BookID, actionIssue, adminID, "transaction %d for user %d", t.ID, in.UserID)
	return t, nil
}

// ReturnBook closes the caller's own loan. A loan of someone else reads as not found.
func (s *Service) ReturnBook(ctx context.Context, userID, transactionID int) (model.ReturnResult, error) {
	t, err := s.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		return model.ReturnResult{}, errors.Wrap(err, "GetTransaction")
	}
	if t.UserID != userID {
		return model.ReturnResult{}, errs.ErrTransactionNotFound
	}
	return s.closeLoan(ctx, userID, t)
}

// AdminReturn is the desk path, any loan can be closed.
func (s *Service) AdminReturn(ctx context.Context, adminID, transactionID int) (model.ReturnResult, error) {
	t, err := s.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		return model.ReturnResult{}, errors.Wrap(err, "GetTransaction")
	}
	return s.closeLoan(ctx, adminID, t)
}

// closeLoan charges the late fine and puts the copy back.
func (s *Service) closeLoan(ctx context.Context, actorID int, t model.Transaction) (model.ReturnResult, error) {
	if t.Status == model.StatusReturned {
		return model.ReturnResult{}, errs.ErrAlreadyReturned
	}

	now := s.now()
	amount := fine(t.DueDate, now)
	if err := s.repo.ReturnTransaction(ctx, t.ID, now, amount); err != nil {
		return model.ReturnResult{}, errors.Wrap(err, "ReturnTransaction")
	}
	s.emit(ctx, kafka.EntityBook, t.BookID, actionReturn, actorID, "transaction %d fine %d", t.ID, amount)

	msg := "Book returned successfully"
	if amount > 0 {
		msg = fmt.Sprintf("%s. Fine: Rs. %d", msg, amount)
	}
	return model.ReturnResult{Message: msg, Fine: amount}, nil
}

func (s *Service) ListTransactions(ctx context.Context) ([]model.TransactionDetails, error) {
	items, err := s.repo.ListTransactions(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "ListTransactions")
	}
	return s.withAccruedFines(items), nil
}

func (s *Service) MyTransactions(ctx context.Context, userID int) ([]model.TransactionDetails, error) {
	items, err := s.repo.ListTransactions(ctx, &userID)
	if err != nil {
		return nil, errors.Wrap(err, "ListTransactions")
	}
	return s.withAccruedFines(items), nil
}

// withAccruedFines marks late active loans overdue and shows the fine they have run up so far.
func (s *Service) withAccruedFines(items []model.TransactionDetails) []model.TransactionDetails {
	now := s.now()
	for i := range items {
		if items[i].Status != model.StatusActive {
			continue
		}
		if now.After(items[i].DueDate) {
			items[i].Status = model.StatusOverdue
			items[i].Fine = fine(items[i].DueDate, now)
		}
	}
	return items
}

func (s *Service) CalculateFine(ctx context.Context, transactionID int) (model.FineQuote, error) {
	t, err := s.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		return model.FineQuote{}, errors.Wrap(err, "GetTransaction")
	}
	q := model.FineQuote{
		TransactionID: t.ID,
		DueDate:       t.DueDate,
		Status:        t.Status,
	}
	if t.Status == model.StatusReturned {
		if t.ReturnDate != nil {
			q.DaysOverdue = daysOverdue(t.DueDate, *t.ReturnDate)
		}
		q.Fine = t.Fine
		return q, nil
	}
	now := s.now()
	q.DaysOverdue = daysOverdue(t.DueDate, now)
	q.Fine = fine(t.DueDate, now)
	if q.DaysOverdue > 0 {
		q.Status = model.StatusOverdue
	}
	return q, nil
}

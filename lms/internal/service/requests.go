package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/lms-service/lms/internal/errs"
	"github.com/Astemirdum/lms-service/lms/internal/model"
	"github.com/Astemirdum/lms-service/pkg/kafka"
)

const (
	defaultApproveNote = "Approved"
	defaultRejectNote  = "Rejected"
)

func (s *Service) PendingRequests(ctx context.Context) ([]model.BookRequestDetails, error) {
	items, err := s.repo.ListPendingRequests(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "ListPendingRequests")
	}
	return items, nil
}

func (s *Service) MyRequests(ctx context.Context, userID int) ([]model.BookRequestDetails, error) {
	items, err := s.repo.ListUserRequests(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "ListUserRequests")
	}
	return items, nil
}

func (s *Service) pendingRequest(ctx context.Context, id int) (model.BookRequest, error) {
	req, err := s.repo.GetBookRequest(ctx, id)
	if err != nil {
		return model.BookRequest{}, errors.Wrap(err, "GetBookRequest")
	}
	if req.Status != model.RequestPending {
		return model.BookRequest{}, errs.ErrRequestProcessed
	}
	return req, nil
}

// ApproveRequest turns a pending request into a loan. Without a due date from the admin the
// loan runs loanPeriod from the approval, so a request that waited in the queue is not born overdue.
func (s *Service) ApproveRequest(ctx context.Context, reviewerID, requestID int, in model.ReviewInput) (model.Transaction, error) {
	req, err := s.pendingRequest(ctx, requestID)
	if err != nil {
		return model.Transaction{}, err
	}
	book, err := s.repo.GetBook(ctx, req.BookID)
	if err != nil {
		return model.Transaction{}, errors.Wrap(err, "GetBook")
	}
	if book.Available <= 0 {
		return model.Transaction{}, errs.ErrNoCopies
	}

	now := s.now()
	due := now.Add(loanPeriod)
	if in.DueDate != nil {
		due = *in.DueDate
	}
	note := in.ReviewNote
	if note == "" {
		note = defaultApproveNote
	}
	t, err := s.repo.ApproveRequest(ctx, model.Approval{
		RequestID:  requestID,
		ReviewerID: reviewerID,
		ReviewNote: note,
		ReviewedAt: now,
		IssueDate:  now,
		DueDate:    due,
	})
	if err != nil {
		return model.Transaction{}, errors.Wrap(err, "ApproveRequest")
	}
	s.emit(ctx, kafka.EntityBook, req.BookID, actionApprove, reviewerID, "request %d transaction %d", requestID, t.ID)
	return t, nil
}

func (s *Service) RejectRequest(ctx context.Context, reviewerID, requestID int, in model.ReviewInput) error {
	req, err := s.pendingRequest(ctx, requestID)
	if err != nil {
		return err
	}
	note := in.ReviewNote
	if note == "" {
		note = defaultRejectNote
	}
	if err := s.repo.RejectRequest(ctx, model.Rejection{
		RequestID:  requestID,
		ReviewerID: reviewerID,
		ReviewNote: note,
		ReviewedAt: s.now(),
	}); err != nil {
		return errors.Wrap(err, "RejectRequest")
	}
	s.emit(ctx, kafka.EntityBook, req.BookID, actionReject, reviewerID, "request %d", requestID)
	return nil
}

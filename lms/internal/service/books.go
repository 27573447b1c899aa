package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/lms-service/lms/internal/errs"
	"github.com/Astemirdum/lms-service/lms/internal/model"
	"github.com/Astemirdum/lms-service/pkg/kafka"
)

func (s *Service) ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error) {
	books, err := s.repo.ListBooks(ctx, filter)
	if err != nil {
		return model.ListBooks{}, errors.Wrap(err, "ListBooks")
	}
	return books, nil
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.Book{}, errors.Wrap(err, "GetBook")
	}
	return book, nil
}

func (s *Service) CreateBook(ctx context.Context, actorID int, in model.BookInput) (model.Book, error) {
	if in.Quantity < 0 {
		return model.Book{}, errs.ErrInvalidInventory
	}
	id, err := s.repo.CreateBook(ctx, in)
	if err != nil {
		return model.Book{}, errors.Wrap(err, "CreateBook")
	}
	s.emit(ctx, kafka.EntityBook, id, actionCreate, actorID, "%s (isbn %s) quantity %d", in.Title, in.ISBN, in.Quantity)
	return s.GetBook(ctx, id)
}

// UpdateBook rewrites the book. Without an explicit available count the change in quantity
// goes onto the shelf, so copies on loan stay accounted for.
// UpdateBook rewrites the book. Without an explicit available count the database shifts it by
// the quantity change against the row it locks, and books_available_check rejects a shrink
// below the copies out on loan.
func (s *Service) UpdateBook(ctx context.Context, actorID, id int, in model.BookInput) (model.Book, error) {
	if in.Quantity < 0 {
		return model.Book{}, errs.ErrInvalidInventory
	}
	if in.Available != nil && (*in.Available < 0 || *in.Available > in.Quantity) {
		return model.Book{}, errs.ErrInvalidInventory
	}
	current, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.Book{}, errors.Wrap(err, "GetBook")
	}

	if err := s.repo.UpdateBook(ctx, id, in); err != nil {
		return model.Book{}, errors.Wrap(err, "UpdateBook")
	}
	updated, err := s.GetBook(ctx, id)
	if err != nil {
		return model.Book{}, err
	}
	s.emit(ctx, kafka.EntityBook, id, actionUpdate, actorID, "quantity %d->%d available %d->%d",
		current.Quantity, updated.Quantity, current.Available, updated.Available)
	return updated, nil
}

func (s *Service) DeleteBook(ctx context.Context, actorID, id int) error {
	if err := s.repo.DeleteBook(ctx, id); err != nil {
		return errors.Wrap(err, "DeleteBook")
	}
	s.emit(ctx, kafka.EntityBook, id, actionDelete, actorID, "book %d deleted", id)
	return nil
}

func (s *Service) ListAuthors(ctx context.Context) ([]model.Lookup, error) {
	return s.repo.ListAuthors(ctx)
}

func (s *Service) ListCategories(ctx context.Context) ([]model.Lookup, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) ListPublishers(ctx context.Context) ([]model.Lookup, error) {
	return s.repo.ListPublishers(ctx)
}

package service

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/lms-service/lms/internal/model"
)

const (
	dashboardRecent   = 10
	dashboardTopBooks = 5
)

func (s *Service) BookInventory(ctx context.Context) ([]model.BookInventory, error) {
	return s.reports.BookInventory(ctx)
}

func (s *Service) ActiveTransactions(ctx context.Context) ([]model.LoanReport, error) {
	return s.reports.ActiveTransactions(ctx)
}

func (s *Service) OverdueTransactions(ctx context.Context) ([]model.LoanReport, error) {
	return s.reports.OverdueTransactions(ctx)
}

func (s *Service) UserBorrowingStats(ctx context.Context) ([]model.UserBorrowingStats, error) {
	return s.reports.UserBorrowingStats(ctx)
}

func (s *Service) PopularBooks(ctx context.Context) ([]model.PopularBook, error) {
	return s.reports.PopularBooks(ctx, 0)
}

func (s *Service) CategoryStats(ctx context.Context) ([]model.CategoryStats, error) {
	return s.reports.CategoryStats(ctx)
}

func (s *Service) MonthlySummary(ctx context.Context) ([]model.MonthlySummary, error) {
	return s.reports.MonthlySummary(ctx)
}

// AdminDashboard runs the four dashboard queries concurrently.
func (s *Service) AdminDashboard(ctx context.Context) (model.AdminDashboard, error) {
	var d model.AdminDashboard
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.OverallStats, err = s.reports.OverallStats(gCtx)
		return errors.Wrap(err, "OverallStats")
	})
	g.Go(func() (err error) {
		d.RecentTransactions, err = s.reports.RecentTransactions(gCtx, dashboardRecent)
		return errors.Wrap(err, "RecentTransactions")
	})
	g.Go(func() (err error) {
		d.TopBooks, err = s.reports.PopularBooks(gCtx, dashboardTopBooks)
		return errors.Wrap(err, "PopularBooks")
	})
	g.Go(func() (err error) {
		d.CategoryDistribution, err = s.reports.CategoryStats(gCtx)
		return errors.Wrap(err, "CategoryStats")
	})
	if err := g.Wait(); err != nil {
		return model.AdminDashboard{}, err
	}
	return d, nil
}

func (s *Service) UserDashboard(ctx context.Context, userID int) (model.UserDashboard, error) {
	stats, err := s.reports.UserStats(ctx, userID)
	if err != nil {
		return model.UserDashboard{}, errors.Wrap(err, "UserStats")
	}
	active, err := s.reports.UserActiveTransactions(ctx, userID)
	if err != nil {
		return model.UserDashboard{}, errors.Wrap(err, "UserActiveTransactions")
	}
	return model.UserDashboard{UserStats: stats, ActiveTransactions: active}, nil
}

func (s *Service) SearchBooks(ctx context.Context, filter model.SearchFilter) ([]model.BookInventory, error) {
	return s.reports.SearchBooks(ctx, filter)
}

func (s *Service) TransactionHistory(ctx context.Context, filter model.HistoryFilter) ([]model.TransactionDetails, error) {
	items, err := s.reports.TransactionHistory(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "TransactionHistory")
	}
	return s.withAccruedFines(items), nil
}

func (s *Service) BookAuditLog(ctx context.Context, bookID *int) ([]model.AuditLog, error) {
	return s.reports.BookAuditLog(ctx, bookID)
}

func (s *Service) UserAuditLog(ctx context.Context, userID *int) ([]model.AuditLog, error) {
	return s.reports.UserAuditLog(ctx, userID)
}

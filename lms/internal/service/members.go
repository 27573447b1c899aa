package service

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/Astemirdum/lms-service/lms/internal/errs"
	"github.com/Astemirdum/lms-service/lms/internal/model"
	"github.com/Astemirdum/lms-service/pkg/kafka"
)

func (s *Service) Profile(ctx context.Context, userID int) (model.Member, error) {
	m, err := s.repo.GetMember(ctx, userID)
	if err != nil {
		return model.Member{}, errors.Wrap(err, "GetMember")
	}
	return m, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int, in model.ProfileInput) (model.Member, error) {
	u, err := s.repo.UpdateProfile(ctx, userID, in)
	if err != nil {
		return model.Member{}, errors.Wrap(err, "UpdateProfile")
	}
	s.emit(ctx, kafka.EntityUser, userID, actionProfileUpdate, userID, "name=%s phone=%s", in.Name, in.Phone)
	return toMember(u), nil
}

func (s *Service) ChangePassword(ctx context.Context, userID int, in model.ChangePasswordInput) error {
	u, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "GetUser")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.CurrentPassword)); err != nil {
		return errs.ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}
	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return errors.Wrap(err, "UpdatePassword")
	}
	s.emit(ctx, kafka.EntityUser, userID, actionPasswordChange, userID, "password changed")
	return nil
}

func (s *Service) ListMembers(ctx context.Context) ([]model.Member, error) {
	members, err := s.repo.ListMembers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "ListMembers")
	}
	return members, nil
}

func (s *Service) GetMember(ctx context.Context, id int) (model.Member, error) {
	m, err := s.repo.GetMember(ctx, id)
	if err != nil {
		return model.Member{}, errors.Wrap(err, "GetMember")
	}
	return m, nil
}

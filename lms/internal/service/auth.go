package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/Astemirdum/lms-service/lms/internal/errs"
	"github.com/Astemirdum/lms-service/lms/internal/model"
	"github.com/Astemirdum/lms-service/pkg/auth"
	"github.com/Astemirdum/lms-service/pkg/kafka"
)

func (s *Service) Signup(ctx context.Context, req model.SignupRequest) (model.Member, error) {
	role := req.Role
	if role == "" {
		role = auth.RoleStudent
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return model.Member{}, errs.ErrUserExists
	case !errors.Is(err, errs.ErrUserNotFound):
		return model.Member{}, errors.Wrap(err, "GetUserByEmail")
	}

	// the unique index is the real guard, this check only gives the common case a clean error
	if role == auth.RoleAdmin {
		exists, err := s.repo.AdminExists(ctx)
		if err != nil {
			return model.Member{}, errors.Wrap(err, "AdminExists")
		}
		if exists {
			return model.Member{}, errs.ErrAdminExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.Member{}, errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	u, err := s.repo.CreateUser(ctx, model.User{
		Name:      req.Name,
		Email:     email,
		Password:  string(hash),
		StudentID: req.StudentID,
		Role:      role,
		Phone:     req.Phone,
	})
	if err != nil {
		return model.Member{}, errors.Wrap(err, "CreateUser")
	}

	s.emit(ctx, kafka.EntityUser, u.ID, actionSignup, u.ID, "role=%s", u.Role)
	return toMember(u), nil
}

// Login answers unknown email and wrong password the same way.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	u, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return model.LoginResponse{}, errs.ErrInvalidCredentials
		}
		return model.LoginResponse{}, errors.Wrap(err, "GetUserByEmail")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return model.LoginResponse{}, errs.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(auth.Identity{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
	})
	if err != nil {
		return model.LoginResponse{}, err
	}
	return model.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.tokens.TTL().Seconds()),
		User:      toMember(u),
	}, nil
}

func toMember(u model.User) model.Member {
	return model.Member{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		StudentID: u.StudentID,
		Role:      u.Role,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

package service

import (
	"Skyline/config"
	"Skyline/dao"
	"Skyline/models"
	"Skyline/pkg/encrypt"
	"Skyline/pkg/errs"
	"Skyline/pkg/jwt"
	"Skyline/types"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.Passenger, error)
	// Login 校验邮箱密码，返回用户和会话 token
	Login(ctx context.Context, req *types.LoginRequest) (*models.Passenger, string, error)
	// Authenticate 解析会话 token，返回用户 ID
	Authenticate(token string) (uint, error)
}

var errBadCredentials = fmt.Errorf("%w: invalid email or password", errs.ErrAuthRequired)

type UserService struct {
	PassengerDAO *dao.PassengerDAO
	Jwt          *config.Jwt
}

func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*models.Passenger, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" || req.Password == "" {
		return nil, errs.Validation("all fields are required")
	}

	exist, err := s.PassengerDAO.IsExist(ctx, "email = ?", email)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, fmt.Errorf("%w: email already registered", errs.ErrConflict)
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	p := &models.Passenger{Name: name, Email: email, Password: hash}
	if err := s.PassengerDAO.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already registered", errs.ErrConflict)
		}
		return nil, err
	}
	return p, nil
}

func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*models.Passenger, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, "", errs.Validation("email and password are required")
	}

	p, err := s.PassengerDAO.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if p == nil || !encrypt.VerifyPassword(p.Password, req.Password) {
		return nil, "", errBadCredentials
	}

	token, err := jwt.GenerateToken([]byte(s.Jwt.Secret), p.PassengerID, jwt.TypeSession, s.Jwt.Expiry())
	if err != nil {
		return nil, "", err
	}
	return p, token, nil
}

func (s *UserService) Authenticate(token string) (uint, error) {
	claims, err := jwt.ParseToken([]byte(s.Jwt.Secret), jwt.TypeSession, token)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrAuthRequired, err)
	}
	return claims.UserID, nil
}

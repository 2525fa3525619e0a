package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/auth"
	"github.com/shiftline-hr/workforce-backend-go/internal/domain/employee"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/jwt"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service, googleService oauth.GoogleService) *AuthServiceImpl {
	return &AuthServiceImpl{
		employeeRepo:  employeeRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueToken(emp)
}

func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.LoginResponse, error) {
	token, err := s.googleService.Exchange(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	googleUser, err := s.googleService.FetchUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !googleUser.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, googleUser.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	return s.issueToken(emp)
}

func (s *AuthServiceImpl) issueToken(emp employee.Employee) (auth.LoginResponse, error) {
	tokenString, expiresAt, err := s.jwtService.GenerateAccessToken(emp)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: tokenString,
		ExpiresAt:   expiresAt,
		User:        employee.ToResponse(emp),
	}, nil
}

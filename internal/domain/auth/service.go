package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// LoginWithGoogle resolves a verified Google account to a directory
	// employee by email and issues the same token as Login.
	LoginWithGoogle(ctx context.Context, code string) (LoginResponse, error)
}

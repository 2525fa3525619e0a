package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/employee"
)

type Service interface {
	// GenerateAccessToken issues an HS256 access token carrying the
	// employee identity and role claims used by the HTTP middleware.
	GenerateAccessToken(emp employee.Employee) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey      string
	accessTokenTTL time.Duration
	tokenAuth      *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessExpiration string) (Service, error) {
	expDuration, err := time.ParseDuration(accessExpiration)
	if err != nil {
		return nil, err
	}
	return &JWTService{
		secretKey:      secretKey,
		accessTokenTTL: expDuration,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}, nil
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(emp employee.Employee) (string, int64, error) {
	expiresAt := time.Now().Add(j.accessTokenTTL).Unix()

	claims := map[string]interface{}{
		"employee_id": emp.ID,
		"email":       emp.Email,
		"role":        string(emp.Role),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

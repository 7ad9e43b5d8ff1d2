package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
	jwtpkg "github.com/staffhub-hr/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/token"
)

type Service struct {
	userRepo      user.UserRepository
	employeeRepo  employee.EmployeeRepository
	jwtService    jwtpkg.Service
	tokenValidity time.Duration
}

func NewService(userRepo user.UserRepository, employeeRepo employee.EmployeeRepository, jwtService jwtpkg.Service, tokenValidity time.Duration) *Service {
	if tokenValidity <= 0 {
		tokenValidity = token.DefaultValidity
	}
	return &Service{
		userRepo:      userRepo,
		employeeRepo:  employeeRepo,
		jwtService:    jwtService,
		tokenValidity: tokenValidity,
	}
}

func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !u.IsActive {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp - time.Now().Unix(),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp - time.Now().Unix(),
	}, nil
}

// MobileLogin authenticates by employee code and issues the compact
// token bound to the user's password hash.
func (s *Service) MobileLogin(ctx context.Context, req auth.MobileLoginRequest) (auth.MobileTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.MobileTokenResponse{}, err
	}

	emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.MobileTokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.MobileTokenResponse{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	if emp.Status != employee.StatusActive {
		return auth.MobileTokenResponse{}, auth.ErrEmployeeInactive
	}

	u, err := s.userRepo.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.MobileTokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.MobileTokenResponse{}, fmt.Errorf("failed to get user by employee id: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.MobileTokenResponse{}, auth.ErrInvalidCredentials
	}

	tok := token.Generate(emp.ID, time.Now(), u.PasswordHash)

	return auth.MobileTokenResponse{
		Token:      tok,
		ExpiresIn:  int64(s.tokenValidity.Seconds()),
		EmployeeID: emp.ID,
	}, nil
}

// VerifyMobileToken resolves a mobile bearer token to a principal. The
// middleware calls this per request.
func (s *Service) VerifyMobileToken(ctx context.Context, tok string) (user.Principal, error) {
	employeeID, _, _, err := token.Parse(tok)
	if err != nil {
		return user.Principal{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return user.Principal{}, auth.ErrInvalidToken
	}

	if _, err := token.Verify(tok, u.PasswordHash, s.tokenValidity, time.Now()); err != nil {
		if errors.Is(err, token.ErrExpired) {
			return user.Principal{}, auth.ErrTokenExpired
		}
		return user.Principal{}, auth.ErrInvalidToken
	}

	return user.Principal{
		UserID:     u.ID,
		EmployeeID: employeeID,
		Role:       u.Role,
	}, nil
}

func (s *Service) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	parsed, err := s.jwtService.JWTAuth().Decode(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if err := jwt.Validate(parsed); err != nil {
		return auth.AccessTokenResponse{}, auth.ErrTokenExpired
	}

	tokenType, _ := parsed.Get("type")
	if tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	userID, ok := parsed.Get("user_id")
	if !ok {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID.(string))
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: accessExp - time.Now().Unix(),
	}, nil
}

func (s *Service) Logout(ctx context.Context, accessToken, refreshToken string) error {
	s.jwtService.RevokeToken(accessToken)
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/goshop-tools/goshop_backend/internal/auth"
	"github.com/goshop-tools/goshop_backend/internal/models"
	"github.com/goshop-tools/goshop_backend/internal/repository"
)

// RegisterInput carries the data for a new member registration
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  models.Address
}

// AuthService handles member registration and login
type AuthService interface {
	// Register creates a member account with a hashed password
	Register(ctx context.Context, input RegisterInput) (*models.Member, error)

	// Login verifies credentials and issues a token pair
	Login(ctx context.Context, email, password string) (*auth.TokenPair, *models.Member, error)

	// Refresh exchanges a valid refresh token for a new token pair
	Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
}

// authService implements AuthService
type authService struct {
	memberRepo repository.MemberRepository
	jwtService auth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(memberRepo repository.MemberRepository, jwtService auth.JWTService) AuthService {
	return &authService{
		memberRepo: memberRepo,
		jwtService: jwtService,
	}
}

// Register creates a member account
func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.Member, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, models.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	member := &models.Member{
		Name:         input.Name,
		Email:        input.Email,
		Address:      input.Address,
		PasswordHash: string(hash),
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Login verifies the credentials and issues tokens.
// #SECURITY_CONCERN: Unknown email and wrong password return the same error
// so the endpoint cannot be used to probe for accounts.
func (s *authService) Login(ctx context.Context, email, password string) (*auth.TokenPair, *models.Member, error) {
	member, err := s.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrMemberNotFound) {
			return nil, nil, models.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, nil, models.ErrInvalidCredentials
	}

	pair, err := s.jwtService.GenerateTokenPair(member.ID, member.Name)
	if err != nil {
		return nil, nil, err
	}
	return pair, member, nil
}

// Refresh exchanges a refresh token for a new pair
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	member, err := s.memberRepo.GetByID(ctx, claims.MemberID)
	if err != nil {
		return nil, err
	}
	return s.jwtService.GenerateTokenPair(member.ID, member.Name)
}

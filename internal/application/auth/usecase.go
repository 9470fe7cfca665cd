package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rkeng/billing-api/internal/application/dto"
	"github.com/rkeng/billing-api/internal/domain"
	"github.com/rkeng/billing-api/internal/domain/entity"
	"github.com/rkeng/billing-api/internal/domain/repository"
	"github.com/rkeng/billing-api/pkg/jwt"
)

// JWTConfig token generation settings for the use case.
type JWTConfig struct {
	Secret          string
	ExpMinutes      int
	ResetExpMinutes int
	Issuer          string
}

// AuthUseCase authentication use cases: register, login and the
// forgot/reset password flow.
type AuthUseCase struct {
	userRepo repository.UserRepository
	mailer   Mailer
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(userRepo repository.UserRepository, mailer Mailer, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, mailer: mailer, jwtCfg: jwtCfg}
}

// Register creates a user: hashes the password with bcrypt and persists.
// Returns domain.ErrEmailAlreadyExists when the email is taken.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (string, error) {
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// Login verifies email/password and returns a signed bearer token.
// Unknown email and wrong password both map to domain.ErrInvalidCredentials
// so callers cannot enumerate accounts.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message:     "Login successful",
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// ForgotPassword issues a short-lived reset token and hands it to the mailer.
// Returns domain.ErrUserNotFound for unknown emails.
func (uc *AuthUseCase) ForgotPassword(in dto.ForgotPasswordRequest) error {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	token, err := jwt.GenerateReset(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ResetExpMinutes)
	if err != nil {
		return err
	}
	return uc.mailer.SendPasswordReset(user.Email, token)
}

// ResetPassword validates the reset token and stores a new password hash.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	userID, _, err := jwt.ParseReset(uc.jwtCfg.Secret, in.Token)
	if err != nil {
		return domain.ErrUnauthorized
	}
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(user.ID, string(hash))
}

package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
	"skillswap/pkg/errors"
)

type AuthUseCase struct {
	userRepo       repository.UserRepository
	clientRepo     repository.ClientProfileRepository
	freelancerRepo repository.FreelancerProfileRepository
	tokens         TokenProvider
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	clientRepo repository.ClientProfileRepository,
	freelancerRepo repository.FreelancerProfileRepository,
	tokens TokenProvider,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:       userRepo,
		clientRepo:     clientRepo,
		freelancerRepo: freelancerRepo,
		tokens:         tokens,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Username string
	Phone    string
	Role     string // client or freelancer
}

type AuthResult struct {
	User         *entity.User
	Token        string
	RefreshToken string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Role != entity.RoleClient && input.Role != entity.RoleFreelancer {
		return nil, errors.BadRequest("Role must be client or freelancer", nil)
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	hash, err := uc.tokens.HashPassword(input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:            uuid.New().String(),
		Email:         input.Email,
		PasswordHash:  hash,
		Username:      input.Username,
		Phone:         input.Phone,
		Role:          input.Role,
		AccountStatus: entity.AccountStatusActive,
		Preferences: entity.NotificationPreferences{
			EmailEnabled: true,
			InAppEnabled: true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	// The role-specific profile is created alongside the account.
	switch input.Role {
	case entity.RoleClient:
		profile := &entity.ClientProfile{
			ID:                 uuid.New().String(),
			UserID:             user.ID,
			VerificationStatus: "unverified",
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := uc.clientRepo.Create(ctx, profile); err != nil {
			return nil, errors.Internal("Failed to create client profile", err)
		}
	case entity.RoleFreelancer:
		profile := &entity.FreelancerProfile{
			ID:                 uuid.New().String(),
			UserID:             user.ID,
			Skills:             []string{},
			Availability:       "available",
			VerificationStatus: "unverified",
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := uc.freelancerRepo.Create(ctx, profile); err != nil {
			return nil, errors.Internal("Failed to create freelancer profile", err)
		}
	}

	return uc.issueTokens(user)
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Unauthorized("Invalid email or password", err)
	}

	if err := uc.tokens.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, errors.Unauthorized("Invalid email or password", nil)
	}

	if user.AccountStatus != entity.AccountStatusActive {
		return nil, errors.Forbidden("Account is "+user.AccountStatus, nil)
	}

	return uc.issueTokens(user)
}

func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	userID, _, err := uc.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.Unauthorized("User no longer exists", err)
	}

	if user.AccountStatus != entity.AccountStatusActive {
		return nil, errors.Forbidden("Account is "+user.AccountStatus, nil)
	}

	return uc.issueTokens(user)
}

func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return errors.NotFound("User", err)
	}

	if err := uc.tokens.ComparePassword(user.PasswordHash, oldPassword); err != nil {
		return errors.Unauthorized("Current password is incorrect", nil)
	}

	hash, err := uc.tokens.HashPassword(newPassword)
	if err != nil {
		return errors.Internal("Failed to hash password", err)
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now()

	return uc.userRepo.Update(ctx, user)
}

func (uc *AuthUseCase) issueTokens(user *entity.User) (*AuthResult, error) {
	token, err := uc.tokens.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	refreshToken, err := uc.tokens.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Internal("Failed to generate refresh token", err)
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

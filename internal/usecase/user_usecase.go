package usecase

import (
	"context"
	"time"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
	"skillswap/pkg/errors"
)

type UserUseCase struct {
	userRepo       repository.UserRepository
	clientRepo     repository.ClientProfileRepository
	freelancerRepo repository.FreelancerProfileRepository
	reviewRepo     repository.ReviewRepository
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	clientRepo repository.ClientProfileRepository,
	freelancerRepo repository.FreelancerProfileRepository,
	reviewRepo repository.ReviewRepository,
) *UserUseCase {
	return &UserUseCase{
		userRepo:       userRepo,
		clientRepo:     clientRepo,
		freelancerRepo: freelancerRepo,
		reviewRepo:     reviewRepo,
	}
}

type UpdateUserInput struct {
	Username  string
	Phone     string
	Bio       string
	AvatarURL string
}

type UpdateClientProfileInput struct {
	CompanyName    string
	Website        string
	BillingAddress string
}

// PublicProfile is a user together with their role profile, the shape
// other users see.
type PublicProfile struct {
	User              *entity.User              `json:"user"`
	ClientProfile     *entity.ClientProfile     `json:"client_profile,omitempty"`
	FreelancerProfile *entity.FreelancerProfile `json:"freelancer_profile,omitempty"`
}

func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

func (uc *UserUseCase) GetPublicProfile(ctx context.Context, userID string) (*PublicProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	profile := &PublicProfile{User: user}
	switch user.Role {
	case entity.RoleClient:
		if p, err := uc.clientRepo.GetByUserID(ctx, userID); err == nil {
			profile.ClientProfile = p
		}
	case entity.RoleFreelancer:
		if p, err := uc.freelancerRepo.GetByUserID(ctx, userID); err == nil {
			profile.FreelancerProfile = p
		}
	}

	return profile, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateUserInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.AvatarURL != "" {
		user.AvatarURL = input.AvatarURL
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) UpdatePreferences(ctx context.Context, userID string, preferences entity.NotificationPreferences) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	user.Preferences = preferences
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) UpdateClientProfile(ctx context.Context, userID string, input UpdateClientProfileInput) (*entity.ClientProfile, error) {
	profile, err := uc.clientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Forbidden("Client profile required", err)
	}

	if input.CompanyName != "" {
		profile.CompanyName = input.CompanyName
	}
	if input.Website != "" {
		profile.Website = input.Website
	}
	if input.BillingAddress != "" {
		profile.BillingAddress = input.BillingAddress
	}
	profile.UpdatedAt = time.Now()

	if err := uc.clientRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// Deactivate is the self-service account shutdown. The record stays so
// projects and reviews keep their references.
func (uc *UserUseCase) Deactivate(ctx context.Context, userID string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return errors.NotFound("User", err)
	}

	user.AccountStatus = entity.AccountStatusDeactivated
	user.UpdatedAt = time.Now()

	return uc.userRepo.Update(ctx, user)
}

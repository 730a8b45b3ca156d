package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tumaini/duka-api/internal/application/dto"
	"github.com/tumaini/duka-api/internal/domain"
	"github.com/tumaini/duka-api/internal/domain/entity"
	"github.com/tumaini/duka-api/internal/domain/repository"
	"github.com/tumaini/duka-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase authentication use cases: register, login and profile lookup.
type AuthUseCase struct {
	profileRepo  repository.ProfileRepository
	orgRepo      repository.OrganizationRepository
	locationRepo repository.LocationRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(
	profileRepo repository.ProfileRepository,
	orgRepo repository.OrganizationRepository,
	locationRepo repository.LocationRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		profileRepo:  profileRepo,
		orgRepo:      orgRepo,
		locationRepo: locationRepo,
		jwtCfg:       jwtCfg,
	}
}

// Register creates an account: hashes the password with bcrypt and
// provisions the profile row. Returns ErrEmailAlreadyExists for a taken
// email and ErrNotFound when the organization or location does not exist.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.ProfileResponse, error) {
	existing, _ := uc.profileRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	org, err := uc.orgRepo.GetByID(in.OrgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil || location.OrgID != in.OrgID {
		return nil, domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	fullName := in.FullName
	if fullName == "" {
		fullName = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleStaff
	}
	profile := &entity.Profile{
		ID:           uuid.New().String(),
		OrgID:        in.OrgID,
		LocationID:   in.LocationID,
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// Login verifies email/password, issues a JWT and returns token + profile.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	profile, err := uc.profileRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if profile.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, profile.OrgID, profile.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Profile: *toProfileResponse(profile),
	}, nil
}

// CurrentProfile fetches the profile joined with organization and location
// display fields. Returns (nil, nil) when the id matches no row; any other
// storage failure propagates.
func (uc *AuthUseCase) CurrentProfile(id string) (*dto.ProfileViewResponse, error) {
	view, err := uc.profileRepo.GetViewByID(id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, nil
	}
	return &dto.ProfileViewResponse{
		ProfileResponse: *toProfileResponse(&view.Profile),
		OrgName:         view.OrgName,
		LocationName:    view.LocationName,
		LocationType:    view.LocationType,
	}, nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:         p.ID,
		OrgID:      p.OrgID,
		LocationID: p.LocationID,
		Email:      p.Email,
		FullName:   p.FullName,
		Role:       p.Role,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tumaini/duka-api/internal/application/dto"
	"github.com/tumaini/duka-api/internal/domain"
	"github.com/tumaini/duka-api/internal/domain/entity"
	"github.com/tumaini/duka-api/internal/domain/repository"
)

// LocationUseCase site setup and staff listing use cases.
type LocationUseCase struct {
	repo        repository.LocationRepository
	profileRepo repository.ProfileRepository
}

// NewLocationUseCase builds the use case.
func NewLocationUseCase(repo repository.LocationRepository, profileRepo repository.ProfileRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo, profileRepo: profileRepo}
}

// Create creates a location. The name is stored upper-cased; no uniqueness
// check is made.
func (uc *LocationUseCase) Create(orgID string, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	switch in.Type {
	case entity.LocationTypeMain, entity.LocationTypeCamp, entity.LocationTypeKitchen:
	default:
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	location := &entity.Location{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		Name:      strings.ToUpper(in.Name),
		Type:      in.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lists the organization's locations with pagination.
func (uc *LocationUseCase) List(orgID string, limit, offset int) (*dto.LocationListResponse, error) {
	list, err := uc.repo.ListByOrganization(orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Staff lists the organization's profiles.
func (uc *LocationUseCase) Staff(orgID string, limit, offset int) ([]dto.ProfileResponse, error) {
	list, err := uc.profileRepo.ListByOrganization(orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProfileResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProfileResponse{
			ID:         p.ID,
			OrgID:      p.OrgID,
			LocationID: p.LocationID,
			Email:      p.Email,
			FullName:   p.FullName,
			Role:       p.Role,
			Status:     p.Status,
			CreatedAt:  p.CreatedAt,
			UpdatedAt:  p.UpdatedAt,
		})
	}
	return items, nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:        l.ID,
		OrgID:     l.OrgID,
		Name:      l.Name,
		Type:      l.Type,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

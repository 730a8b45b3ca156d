package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tumaini/duka-api/internal/domain"
	"github.com/tumaini/duka-api/internal/domain/entity"
	"github.com/tumaini/duka-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implements the ProfileRepository port over PostgreSQL.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

// NewProfileRepository builds the persistence adapter for profiles.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// Create persists a new profile.
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, org_id, location_id, email, password_hash, full_name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		profile.ID, profile.OrgID, profile.LocationID, profile.Email, profile.PasswordHash,
		profile.FullName, profile.Role, profile.Status, profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID fetches a profile by id; (nil, nil) when absent.
func (r *ProfileRepo) GetByID(id string) (*entity.Profile, error) {
	query := `
		SELECT id, org_id, location_id, email, password_hash, full_name, role, status, created_at, updated_at
		FROM profiles WHERE id = $1`
	var p entity.Profile
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.OrgID, &p.LocationID, &p.Email, &p.PasswordHash, &p.FullName, &p.Role, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by id: %w", err)
	}
	return &p, nil
}

// GetByEmail fetches a profile by email; (nil, nil) when absent.
func (r *ProfileRepo) GetByEmail(email string) (*entity.Profile, error) {
	query := `
		SELECT id, org_id, location_id, email, password_hash, full_name, role, status, created_at, updated_at
		FROM profiles WHERE email = $1 LIMIT 1`
	var p entity.Profile
	err := r.pool.QueryRow(context.Background(), query, email).Scan(
		&p.ID, &p.OrgID, &p.LocationID, &p.Email, &p.PasswordHash, &p.FullName, &p.Role, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by email: %w", err)
	}
	return &p, nil
}

// GetViewByID fetches a profile joined with organization name and location
// name/type; (nil, nil) when absent.
func (r *ProfileRepo) GetViewByID(id string) (*repository.ProfileView, error) {
	query := `
		SELECT p.id, p.org_id, p.location_id, p.email, p.password_hash, p.full_name, p.role, p.status,
		       p.created_at, p.updated_at, o.name, l.name, l.type
		FROM profiles p
		JOIN organizations o ON o.id = p.org_id
		JOIN locations l ON l.id = p.location_id
		WHERE p.id = $1`
	var v repository.ProfileView
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&v.Profile.ID, &v.Profile.OrgID, &v.Profile.LocationID, &v.Profile.Email, &v.Profile.PasswordHash,
		&v.Profile.FullName, &v.Profile.Role, &v.Profile.Status, &v.Profile.CreatedAt, &v.Profile.UpdatedAt,
		&v.OrgName, &v.LocationName, &v.LocationType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile view: %w", err)
	}
	return &v, nil
}

// Update updates a profile.
func (r *ProfileRepo) Update(profile *entity.Profile) error {
	query := `
		UPDATE profiles SET location_id = $2, email = $3, password_hash = $4, full_name = $5, role = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		profile.ID, profile.LocationID, profile.Email, profile.PasswordHash,
		profile.FullName, profile.Role, profile.Status, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// ListByOrganization lists the organization's profiles with pagination.
func (r *ProfileRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Profile, error) {
	query := `
		SELECT id, org_id, location_id, email, password_hash, full_name, role, status, created_at, updated_at
		FROM profiles WHERE org_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profile
	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(&p.ID, &p.OrgID, &p.LocationID, &p.Email, &p.PasswordHash, &p.FullName, &p.Role, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

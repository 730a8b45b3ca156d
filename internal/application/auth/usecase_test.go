package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tumaini/duka-api/internal/application/dto"
	"github.com/tumaini/duka-api/internal/domain"
	"github.com/tumaini/duka-api/internal/domain/entity"
	"github.com/tumaini/duka-api/internal/domain/repository"
	"github.com/tumaini/duka-api/pkg/jwt"
)

const (
	testOrgID    = "org-1"
	testLocation = "loc-main"
	testSecret   = "unit-test-secret"
	testIssuer   = "duka-api-test"
)

type fakeProfileRepo struct {
	byEmail map[string]*entity.Profile
	byID    map[string]*entity.Profile
	views   map[string]*repository.ProfileView
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		byEmail: map[string]*entity.Profile{},
		byID:    map[string]*entity.Profile{},
		views:   map[string]*repository.ProfileView{},
	}
}

func (f *fakeProfileRepo) Create(p *entity.Profile) error {
	if _, exists := f.byEmail[p.Email]; exists {
		return domain.ErrEmailAlreadyExists
	}
	f.byEmail[p.Email] = p
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) GetByID(id string) (*entity.Profile, error)       { return f.byID[id], nil }
func (f *fakeProfileRepo) GetByEmail(email string) (*entity.Profile, error) { return f.byEmail[email], nil }
func (f *fakeProfileRepo) GetViewByID(id string) (*repository.ProfileView, error) {
	return f.views[id], nil
}
func (f *fakeProfileRepo) Update(p *entity.Profile) error { f.byID[p.ID] = p; return nil }
func (f *fakeProfileRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Profile, error) {
	return nil, nil
}

type fakeOrgRepo struct {
	orgs map[string]*entity.Organization
}

func (f *fakeOrgRepo) Create(o *entity.Organization) error { f.orgs[o.ID] = o; return nil }
func (f *fakeOrgRepo) GetByID(id string) (*entity.Organization, error) {
	return f.orgs[id], nil
}
func (f *fakeOrgRepo) List(limit, offset int) ([]*entity.Organization, error) { return nil, nil }

type fakeLocationRepo struct {
	locations map[string]*entity.Location
}

func (f *fakeLocationRepo) Create(l *entity.Location) error { f.locations[l.ID] = l; return nil }
func (f *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return f.locations[id], nil
}
func (f *fakeLocationRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Location, error) {
	return nil, nil
}

func newTestAuthUseCase(profileRepo *fakeProfileRepo) *AuthUseCase {
	return NewAuthUseCase(
		profileRepo,
		&fakeOrgRepo{orgs: map[string]*entity.Organization{
			testOrgID: {ID: testOrgID, Name: "Tumaini Lodge"},
		}},
		&fakeLocationRepo{locations: map[string]*entity.Location{
			testLocation: {ID: testLocation, OrgID: testOrgID, Name: "MAIN STORE", Type: entity.LocationTypeMain},
		}},
		JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer},
	)
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:      "staff@example.com",
		Password:   "long-enough-password",
		FullName:   "Asha Mushi",
		OrgID:      testOrgID,
		LocationID: testLocation,
		Role:       entity.RoleStaff,
	}
}

func TestRegister_HashesPasswordAndStoresProfile(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	uc := newTestAuthUseCase(profileRepo)

	out, err := uc.Register(validRegister())
	require.NoError(t, err)
	require.NotNil(t, out)

	stored := profileRepo.byEmail["staff@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "long-enough-password", stored.PasswordHash, "password must never be stored plain")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("long-enough-password")))
	assert.Equal(t, "active", stored.Status)
	assert.Equal(t, "Asha Mushi", out.FullName)
}

func TestRegister_DefaultsRoleAndName(t *testing.T) {
	uc := newTestAuthUseCase(newFakeProfileRepo())

	in := validRegister()
	in.FullName = ""
	in.Role = ""
	out, err := uc.Register(in)
	require.NoError(t, err)

	assert.Equal(t, entity.RoleStaff, out.Role)
	assert.Equal(t, in.Email, out.FullName, "full name falls back to the email")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := newTestAuthUseCase(newFakeProfileRepo())

	_, err := uc.Register(validRegister())
	require.NoError(t, err)

	_, err = uc.Register(validRegister())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_UnknownOrganization(t *testing.T) {
	uc := newTestAuthUseCase(newFakeProfileRepo())

	in := validRegister()
	in.OrgID = "org-ghost"
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_LocationFromAnotherOrg(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	uc := NewAuthUseCase(
		profileRepo,
		&fakeOrgRepo{orgs: map[string]*entity.Organization{
			testOrgID: {ID: testOrgID, Name: "Tumaini Lodge"},
		}},
		&fakeLocationRepo{locations: map[string]*entity.Location{
			testLocation: {ID: testLocation, OrgID: "org-other", Name: "MAIN STORE", Type: entity.LocationTypeMain},
		}},
		JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer},
	)

	_, err := uc.Register(validRegister())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_IssuesParseableToken(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	uc := newTestAuthUseCase(profileRepo)

	reg, err := uc.Register(validRegister())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "staff@example.com", Password: "long-enough-password"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, orgID, role, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, testOrgID, orgID)
	assert.Equal(t, entity.RoleStaff, role)
	assert.Equal(t, reg.Email, out.Profile.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := newTestAuthUseCase(newFakeProfileRepo())
	_, err := uc.Register(validRegister())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "staff@example.com", Password: "not-the-password"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := newTestAuthUseCase(newFakeProfileRepo())
	_, err := uc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestLogin_SuspendedAccount(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	uc := newTestAuthUseCase(profileRepo)

	_, err := uc.Register(validRegister())
	require.NoError(t, err)
	profileRepo.byEmail["staff@example.com"].Status = "suspended"

	_, err = uc.Login(dto.LoginRequest{Email: "staff@example.com", Password: "long-enough-password"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCurrentProfile_JoinsDisplayFields(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	uc := newTestAuthUseCase(profileRepo)

	reg, err := uc.Register(validRegister())
	require.NoError(t, err)
	profileRepo.views[reg.ID] = &repository.ProfileView{
		Profile:      *profileRepo.byID[reg.ID],
		OrgName:      "Tumaini Lodge",
		LocationName: "MAIN STORE",
		LocationType: entity.LocationTypeMain,
	}

	view, err := uc.CurrentProfile(reg.ID)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "Tumaini Lodge", view.OrgName)
	assert.Equal(t, "MAIN STORE", view.LocationName)
	assert.Equal(t, entity.LocationTypeMain, view.LocationType)
}

func TestCurrentProfile_AbsentIsNilNil(t *testing.T) {
	uc := newTestAuthUseCase(newFakeProfileRepo())
	view, err := uc.CurrentProfile("ghost")
	require.NoError(t, err)
	assert.Nil(t, view)
}

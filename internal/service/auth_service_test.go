package service

import (
	"testing"

	"github.com/nkritika/prepforge/config"
	"github.com/nkritika/prepforge/internal/apperr"
	"github.com/nkritika/prepforge/internal/dto"
	"github.com/nkritika/prepforge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newAuthServiceForTest() (AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	return NewAuthService(repo, cfg), repo
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	user, err := svc.Register(dto.RegisterDTO{Username: "asha", DisplayName: "Asha", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, user.Role)

	token, err := svc.Login(dto.LoginDTO{Username: "asha", Password: "correct horse"})
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleStudent, claims.Role)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	_, err := svc.Register(dto.RegisterDTO{Username: "asha", DisplayName: "Asha", Password: "correct horse"})
	require.NoError(t, err)

	_, err = svc.Register(dto.RegisterDTO{Username: "asha", DisplayName: "Other", Password: "battery staple"})
	var duplicateErr *apperr.DuplicateNameError
	assert.ErrorAs(t, err, &duplicateErr)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	_, err := svc.Register(dto.RegisterDTO{Username: "asha", DisplayName: "Asha", Password: "correct horse"})
	require.NoError(t, err)

	_, err = svc.Login(dto.LoginDTO{Username: "asha", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(dto.LoginDTO{Username: "nobody", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsForgedToken(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	otherCfg := &config.Config{}
	otherCfg.Auth.JWTSecret = "different-secret"
	other := NewAuthService(newFakeUserRepo(), otherCfg)

	_, err := other.Register(dto.RegisterDTO{Username: "eve", DisplayName: "Eve", Password: "password123"})
	require.NoError(t, err)
	token, err := other.Login(dto.LoginDTO{Username: "eve", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.Error(t, err)
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	svc, repo := newAuthServiceForTest()

	require.NoError(t, svc.EnsureAdmin("admin", "s3cret-pass"))
	require.NoError(t, svc.EnsureAdmin("admin", "s3cret-pass"))

	admin, err := repo.FindByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.Len(t, repo.users, 1)
}

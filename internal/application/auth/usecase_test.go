package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/llantera-api/internal/application/auth"
	"github.com/jcastro/llantera-api/internal/application/dto"
	"github.com/jcastro/llantera-api/internal/domain"
	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrUsernameAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdatePassword(id, passwordHash string) error {
	if u, ok := r.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (r *fakeUserRepo) UpdateStatus(id, status string) error {
	if u, ok := r.users[id]; ok {
		u.Status = status
	}
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

var testJWTCfg = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "llantera-api-test",
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConPasswordHasheado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	user, err := uc.Register(dto.RegisterRequest{
		Username: "mgomez",
		Password: "secreta-123",
		RealName: "María Gómez",
	})
	require.NoError(t, err)
	assert.Equal(t, "mgomez", user.Username)
	assert.Equal(t, entity.RoleOperador, user.Role, "sin rol explícito queda como operador")
	assert.Equal(t, entity.UserActive, user.Status)

	stored, _ := repo.FindByUsername("mgomez")
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta-123", stored.PasswordHash, "el password nunca se guarda en texto plano")
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.Register(dto.RegisterRequest{Username: "mgomez", Password: "secreta-123", RealName: "María"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "mgomez", Password: "otra-clave-99", RealName: "Otra"})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestLogin_CredencialesCorrectasDevuelvenToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)
	_, err := uc.Register(dto.RegisterRequest{Username: "mgomez", Password: "secreta-123", RealName: "María"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "mgomez", Password: "secreta-123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "mgomez", out.User.Username)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)
	_, err := uc.Register(dto.RegisterRequest{Username: "mgomez", Password: "secreta-123", RealName: "María"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "mgomez", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)
	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioDeshabilitado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)
	user, err := uc.Register(dto.RegisterRequest{Username: "mgomez", Password: "secreta-123", RealName: "María"})
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(user.ID, entity.UserDisabled))

	_, err = uc.Login(dto.LoginRequest{Username: "mgomez", Password: "secreta-123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestChangePassword_VerificaLaActual(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)
	user, err := uc.Register(dto.RegisterRequest{Username: "mgomez", Password: "secreta-123", RealName: "María"})
	require.NoError(t, err)

	// Contraseña actual incorrecta
	err = uc.ChangePassword(user.ID, dto.ChangePasswordRequest{OldPassword: "mala", NewPassword: "nueva-clave-77"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Contraseña actual correcta: el login con la nueva funciona
	err = uc.ChangePassword(user.ID, dto.ChangePasswordRequest{OldPassword: "secreta-123", NewPassword: "nueva-clave-77"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "mgomez", Password: "secreta-123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "la clave anterior ya no sirve")

	out, err := uc.Login(dto.LoginRequest{Username: "mgomez", Password: "nueva-clave-77"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

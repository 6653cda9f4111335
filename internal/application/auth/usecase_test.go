package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Trazabilidad-api/internal/application/auth"
	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
)

// fakeUserRepo repositorio en memoria para las pruebas de auth.
type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, ex := range r.users {
		if ex.Username == u.Username {
			return domain.ErrDuplicate
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

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "trazabilidad-test",
	})
}

func TestRegisterUser_HasheaYNoExponeSecreto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.RegisterUser(dto.RegisterRequest{Username: "supplier1", Password: "password123", Role: "supplier"})
	require.NoError(t, err)
	assert.Equal(t, "supplier1", out.Username)
	assert.Equal(t, "supplier", out.Role)

	stored, _ := repo.GetByUsername("supplier1")
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash, "el password nunca se guarda en claro")
}

func TestRegisterUser_UsernameDuplicado(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())
	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "admin", Password: "adminpass", Role: "admin"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Username: "admin", Password: "otra", Role: "viewer"})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyUsed)
}

func TestRegisterUser_RolPorDefectoViewer(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())
	out, err := uc.RegisterUser(dto.RegisterRequest{Username: "ana", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "viewer", out.Role)
}

func TestRegisterUser_RolDesconocido(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())
	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "eva", Password: "password123", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_EmiteToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "supplier1", Password: "password123", Role: "supplier"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "supplier1", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "bearer", out.Type)
	assert.Equal(t, "supplier1", out.User.Username)
}

func TestLogin_CredencialesMalas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "supplier1", Password: "password123", Role: "supplier"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "supplier1", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "nadie", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "usuario inexistente responde igual que password malo")
}

func TestLogin_CuentaDeshabilitada(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	out, err := uc.RegisterUser(dto.RegisterRequest{Username: "ex-empleado", Password: "password123", Role: "distributor"})
	require.NoError(t, err)

	repo.users[out.ID].Disabled = true

	_, err = uc.Login(dto.LoginRequest{Username: "ex-empleado", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

package service_test

import (
	"testing"

	"go-stockledger/internal/model"
	"go-stockledger/internal/service"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func activeUser(t *testing.T, password string) *model.User {
	t.Helper()
	user := &model.User{
		Name:     "Alex",
		Username: "alex",
		Email:    "alex@example.com",
		Role:     model.RoleAdmin,
		Status:   model.UserActive,
	}
	if err := user.SetPassword(password); err != nil {
		t.Fatal(err)
	}
	return user
}

func TestLogin_Success(t *testing.T) {
	uRepo := new(MockUserRepository)
	svc := service.NewAuthService(uRepo)

	uRepo.On("FindByEmail", "alex@example.com").Return(activeUser(t, "secret"), nil)

	resp, err := svc.Login("alex@example.com", "secret")

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alex@example.com", resp.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	uRepo := new(MockUserRepository)
	svc := service.NewAuthService(uRepo)

	uRepo.On("FindByEmail", "alex@example.com").Return(activeUser(t, "secret"), nil)

	_, err := svc.Login("alex@example.com", "wrong")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uRepo := new(MockUserRepository)
	svc := service.NewAuthService(uRepo)

	uRepo.On("FindByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login("nobody@example.com", "secret")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	uRepo := new(MockUserRepository)
	svc := service.NewAuthService(uRepo)

	banned := activeUser(t, "secret")
	banned.Status = model.UserBanned
	uRepo.On("FindByEmail", "alex@example.com").Return(banned, nil)

	_, err := svc.Login("alex@example.com", "secret")

	assert.ErrorIs(t, err, service.ErrUserInactive)
}

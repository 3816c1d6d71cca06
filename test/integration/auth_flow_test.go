package integration

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"givebridge-be/internal/dto"
	"givebridge-be/internal/pkg/apperr"
)

func TestAuthFlow(t *testing.T) {
	db := setupDB(t)
	s := newServices(t, db)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	email := fmt.Sprintf("auth-%s@example.com", suffix)

	registered, err := s.auth.RegisterDonor(ctx, &dto.RegisterDonorRequest{
		Username: "auth-" + suffix,
		Email:    email,
		Password: "password123",
		FullName: "Auth Tester",
	})
	require.NoError(t, err)
	assert.Equal(t, "donor_recipient", registered.Role)
	assert.True(t, registered.IsApproved, "donors are auto-approved")

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := s.auth.RegisterDonor(ctx, &dto.RegisterDonorRequest{
			Username: "auth2-" + suffix,
			Email:    email,
			Password: "password123",
			FullName: "Duplicate",
		})
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindValidation, domainErr.Kind)
	})

	t.Run("login issues a token", func(t *testing.T) {
		res, err := s.auth.Login(ctx, &dto.LoginRequest{Email: email, Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, registered.Id, res.User.Id)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		_, err := s.auth.Login(ctx, &dto.LoginRequest{Email: email, Password: "wrong-password"})
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindUnauthorized, domainErr.Kind)
	})

	t.Run("change password rotates the credential", func(t *testing.T) {
		require.NoError(t, s.auth.ChangePassword(ctx, registered.Id, &dto.ChangePasswordRequest{
			CurrentPassword: "password123",
			NewPassword:     "better-password",
		}))

		_, err := s.auth.Login(ctx, &dto.LoginRequest{Email: email, Password: "password123"})
		assert.Error(t, err)

		_, err = s.auth.Login(ctx, &dto.LoginRequest{Email: email, Password: "better-password"})
		assert.NoError(t, err)
	})
}

func TestNGOApprovalGate(t *testing.T) {
	db := setupDB(t)
	s := newServices(t, db)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	email := fmt.Sprintf("gate-%s@example.com", suffix)

	registered, err := s.auth.RegisterNGO(ctx, &dto.RegisterNGORequest{
		Username:      "gate-" + suffix,
		Email:         email,
		Password:      "password123",
		NGOName:       "Gate NGO",
		ContactPerson: "Gate Keeper",
	})
	require.NoError(t, err)
	assert.False(t, registered.IsApproved)

	t.Run("unapproved ngo cannot log in", func(t *testing.T) {
		_, err := s.auth.Login(ctx, &dto.LoginRequest{Email: email, Password: "password123"})
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindForbidden, domainErr.Kind)
	})

	require.NoError(t, s.admin.HandleNGO(ctx, registered.Id, &dto.ApprovalRequest{Action: "approve"}))

	t.Run("approved ngo logs in", func(t *testing.T) {
		res, err := s.auth.Login(ctx, &dto.LoginRequest{Email: email, Password: "password123"})
		require.NoError(t, err)
		assert.True(t, res.User.IsApproved)
	})
}

package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/geobounds-service/internal/domain"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", "geobounds", time.Minute)
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 5*time.Second)

	got, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_Rejects(t *testing.T) {
	userID := uuid.New()

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := NewJWTService("other", "geobounds", time.Minute).GenerateAccessToken(userID)
		require.NoError(t, err)

		_, err = NewJWTService("secret", "geobounds", time.Minute).ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, _, err := NewJWTService("secret", "someone-else", time.Minute).GenerateAccessToken(userID)
		require.NoError(t, err)

		_, err = NewJWTService("secret", "geobounds", time.Minute).ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		svc := NewJWTService("secret", "geobounds", -time.Minute)
		token, _, err := svc.GenerateAccessToken(userID)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewJWTService("secret", "geobounds", time.Minute).ValidateAccessToken("not.a.token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}

package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jongwon/todo-app/internal/core/domain"
)

func TestSessionExpired(t *testing.T) {
	session := domain.Session{ExpiresAt: fixedNow}
	require.False(t, session.Expired(fixedNow.Add(-time.Second)))
	require.True(t, session.Expired(fixedNow))
	require.True(t, session.Expired(fixedNow.Add(time.Second)))
}

func TestRegisterUserInput_Validate(t *testing.T) {
	require.NoError(t, domain.RegisterUserInput{Email: "a@b.c", Password: "12345678"}.Validate())

	verr, ok := domain.AsValidationError(domain.RegisterUserInput{Email: "  ", Password: "12345678"}.Validate())
	require.True(t, ok)
	require.Equal(t, domain.MsgEmailRequired, verr.MessageID)

	verr, ok = domain.AsValidationError(domain.RegisterUserInput{Email: "a@b.c", Password: "short"}.Validate())
	require.True(t, ok)
	require.Equal(t, domain.MsgPasswordTooShort, verr.MessageID)
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "ada@example.com", domain.NormalizeEmail("  Ada@Example.COM "))
}

func TestCallerIdentity_Require(t *testing.T) {
	require.ErrorIs(t, domain.CallerIdentity{}.Require(), domain.ErrUnauthenticated)
	require.ErrorIs(t, domain.CallerIdentity{UserID: "  "}.Require(), domain.ErrUnauthenticated)
	require.NoError(t, domain.CallerIdentity{UserID: "u-1"}.Require())
}

func TestStorageErrorUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := domain.NewStorageError("list tasks", cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, "storage: list tasks: connection reset", err.Error())
	_, ok := domain.AsValidationError(err)
	require.False(t, ok)
}

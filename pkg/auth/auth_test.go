package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"opendom.xyz/home-automation-service/pkg/common"
	_ "opendom.xyz/home-automation-service/pkg/testing"
)

func newTestService() *Service {
	return NewService("test-secret", "admin", "admin-pass", "root-pass")
}

func TestLogin(t *testing.T) {
	common.SetTestLoggerNop()
	svc := newTestService()

	token, err := svc.Login("admin", "admin-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NoError(t, svc.VerifyUser(token))

	// a user-scoped token cannot authorize config writes
	assert.ErrorIs(t, svc.Verify(token), ErrInvalidToken)

	_, err = svc.Login("admin", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = svc.Login("intruder", "admin-pass")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestElevate(t *testing.T) {
	common.SetTestLoggerNop()
	svc := newTestService()

	token, err := svc.Elevate("root-pass")
	require.NoError(t, err)
	assert.NoError(t, svc.Verify(token))
	assert.NoError(t, svc.VerifyUser(token))

	_, err = svc.Elevate("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	common.SetTestLoggerNop()
	svc := newTestService()
	other := NewService("other-secret", "admin", "admin-pass", "root-pass")

	token, err := other.Elevate("root-pass")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Verify(token), ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	common.SetTestLoggerNop()
	svc := newTestService()
	svc.rootTTL = -time.Minute

	token, err := svc.Elevate("root-pass")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Verify(token), ErrInvalidToken)
}

func TestRevoke(t *testing.T) {
	common.SetTestLoggerNop()
	svc := newTestService()

	token, err := svc.Elevate("root-pass")
	require.NoError(t, err)
	require.NoError(t, svc.Verify(token))

	svc.Revoke(token)
	assert.ErrorIs(t, svc.Verify(token), ErrInvalidToken)

	// other sessions stay live
	second, err := svc.Elevate("root-pass")
	require.NoError(t, err)
	assert.NoError(t, svc.Verify(second))
}

func TestRevokeGarbage(t *testing.T) {
	common.SetTestLoggerNop()
	svc := newTestService()

	// must not panic or denylist anything
	svc.Revoke("not-a-token")

	token, err := svc.Elevate("root-pass")
	require.NoError(t, err)
	assert.NoError(t, svc.Verify(token))
}

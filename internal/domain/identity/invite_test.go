package identity

import (
	"testing"

	"github.com/planora/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestInvite(t *testing.T) *Invite {
	invite, err := NewInvite("Bob Park", "bob@example.com", RoleBackendDeveloper)
	require.NoError(t, err)
	require.NotNil(t, invite)
	return invite
}

func TestNewInvite(t *testing.T) {
	invite := createTestInvite(t)

	assert.Equal(t, InviteStatusPending, invite.Status)
	assert.True(t, invite.IsPending())
	assert.Equal(t, "bob@example.com", invite.Email)
}

func TestNewInvite_NormalizesEmail(t *testing.T) {
	invite, err := NewInvite("Bob", " Bob@Example.COM ", RoleDeveloper)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", invite.Email)
}

func TestInvite_Accept(t *testing.T) {
	invite := createTestInvite(t)

	require.NoError(t, invite.Accept())
	assert.Equal(t, InviteStatusAccepted, invite.Status)
	assert.False(t, invite.IsPending())

	// second accept is rejected
	err := invite.Accept()
	require.Error(t, err)
	assert.True(t, shared.IsCode(err, "INVALID_STATE"))
}

func TestInvite_Revoke(t *testing.T) {
	invite := createTestInvite(t)

	require.NoError(t, invite.Revoke())
	assert.Equal(t, InviteStatusRevoked, invite.Status)

	err := invite.Accept()
	require.Error(t, err)
	assert.True(t, shared.IsCode(err, "INVALID_STATE"))
}

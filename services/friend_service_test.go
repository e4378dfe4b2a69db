package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFriendGuards(t *testing.T) {
	clearDatabase(t)
	svc := NewFriendService(testDb)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	_, err := svc.AddFriend(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFriend)

	_, err = svc.AddFriend(alice.ID, "33333333-3333-3333-3333-333333333333")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.AddFriend(alice.ID, bob.ID)
	require.NoError(t, err)

	// Duplicate in either direction is rejected.
	_, err = svc.AddFriend(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyFriends)
	_, err = svc.AddFriend(bob.ID, alice.ID)
	assert.ErrorIs(t, err, ErrAlreadyFriends)
}

func TestListFriendsMergesBothDirections(t *testing.T) {
	clearDatabase(t)
	svc := NewFriendService(testDb)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	carol := createTestUser(t, "carol")

	_, err := svc.AddFriend(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = svc.AddFriend(carol.ID, alice.ID)
	require.NoError(t, err)

	friends, err := svc.ListFriends(alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 2)

	ids := map[string]bool{}
	for _, f := range friends {
		ids[f.UserID] = true
	}
	assert.True(t, ids[bob.ID])
	assert.True(t, ids[carol.ID])
	assert.False(t, ids[alice.ID], "the caller must never appear in their own list")
}

func TestRemoveFriend(t *testing.T) {
	clearDatabase(t)
	svc := NewFriendService(testDb)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	friendship, err := svc.AddFriend(alice.ID, bob.ID)
	require.NoError(t, err)

	// Either side of the friendship may remove it.
	require.NoError(t, svc.RemoveFriend(bob.ID, friendship.ID))
	assert.ErrorIs(t, svc.RemoveFriend(alice.ID, friendship.ID), ErrFriendNotFound)

	friends, err := svc.ListFriends(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListUsersPassesResultCap(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Empty(t, users)
	require.EqualValues(t, 100, repo.lastLimit)
}

package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	t.Parallel()

	users := newFakeUsers()
	phases := newFakePhases()
	logger := zerolog.Nop()
	svc := NewSeedService(users, phases, &logger)

	first, err := svc.Seed(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(seedEmployees)+1, first.Users)
	require.Equal(t, len(seedPhases), first.Phases)

	admin, err := users.GetByAccessCode(context.Background(), "admin")
	require.NoError(t, err)
	require.True(t, admin.IsAdmin)

	employee, err := users.GetByAccessCode(context.Background(), "simone chelli")
	require.NoError(t, err)
	require.Equal(t, "SIMONE CHELLI", employee.FullName)

	second, err := svc.Seed(context.Background())
	require.NoError(t, err)
	require.Zero(t, second.Users)
	require.Zero(t, second.Phases)
}

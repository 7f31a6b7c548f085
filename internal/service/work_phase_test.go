package service

import (
	"context"
	"testing"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/sqlerr"
	"github.com/stretchr/testify/require"
)

func TestWorkPhaseLifecycle(t *testing.T) {
	t.Parallel()

	store := newFakePhases()
	svc := NewWorkPhaseService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.CreateWorkPhaseRequest{Code: "EXT01", Description: "Extra", Category: "EXTRA"})
	require.NoError(t, err)
	require.Equal(t, model.DefaultHourThreshold, created.HourThreshold)

	threshold := 250
	updated, err := svc.Update(ctx, &model.UpdateWorkPhaseRequest{ID: created.ID, HourThreshold: &threshold})
	require.NoError(t, err)
	require.Equal(t, 250, updated.HourThreshold)
	require.Equal(t, "EXT01", updated.Code)

	phases, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, phases, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.True(t, sqlerr.IsNotFound(svc.Delete(ctx, created.ID)))

	_, err = svc.Update(ctx, &model.UpdateWorkPhaseRequest{ID: created.ID})
	require.True(t, sqlerr.IsNotFound(err))
}

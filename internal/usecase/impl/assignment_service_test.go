package impl

import (
	"context"
	"testing"
	"time"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAssignmentService(t *testing.T) (usecase.AssignmentUsecase, *fakeAssignmentRepo) {
	t.Helper()

	repo := newFakeAssignmentRepo()
	svc := NewAssignmentService(AssignmentServiceParams{
		AssignmentRepo: repo,
		Logger:         newDiscardLogger(),
	})

	return svc, repo
}

func TestAssignmentService_CreateStartsPending(t *testing.T) {
	t.Parallel()

	svc, _ := createTestAssignmentService(t)

	created, err := svc.Create(context.Background(), "user-1", &usecase.CreateAssignmentInput{
		Title:   "Problem Set 3",
		DueDate: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AssignmentPending, created.Status)
}

func TestAssignmentService_StatusFilter(t *testing.T) {
	t.Parallel()

	svc, _ := createTestAssignmentService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "user-1", &usecase.CreateAssignmentInput{Title: "PS1", DueDate: time.Now()})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-1", &usecase.CreateAssignmentInput{Title: "PS2", DueDate: time.Now()})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "user-1", first.ID, &usecase.UpdateAssignmentInput{
		Title:   first.Title,
		DueDate: first.DueDate,
		Status:  entity.AssignmentCompleted,
	})
	require.NoError(t, err)

	completed, err := svc.List(ctx, "user-1", entity.AssignmentCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "PS1", completed[0].Title)

	all, err := svc.List(ctx, "user-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAssignmentService_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	svc, _ := createTestAssignmentService(t)
	ctx := context.Background()

	_, err := svc.List(ctx, "user-1", entity.AssignmentStatus("archived"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	created, err := svc.Create(ctx, "user-1", &usecase.CreateAssignmentInput{Title: "PS1", DueDate: time.Now()})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "user-1", created.ID, &usecase.UpdateAssignmentInput{
		Title:  "PS1",
		Status: entity.AssignmentStatus("archived"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAssignmentService_OwnershipScoping(t *testing.T) {
	t.Parallel()

	svc, _ := createTestAssignmentService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", &usecase.CreateAssignmentInput{Title: "PS1", DueDate: time.Now()})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "user-2", created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAssignmentNotFound)

	err = svc.Delete(ctx, "user-2", created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAssignmentNotFound)
}

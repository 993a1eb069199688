package impl

import (
	"context"
	"log/slog"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// assignmentService implements the AssignmentUsecase interface.
type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	logger         *slog.Logger
}

// AssignmentServiceParams holds dependencies for assignmentService, injected by Fx.
type AssignmentServiceParams struct {
	fx.In

	AssignmentRepo repository.AssignmentRepository
	Logger         *slog.Logger
}

// NewAssignmentService is the constructor for assignmentService.
func NewAssignmentService(params AssignmentServiceParams) usecase.AssignmentUsecase {
	return &assignmentService{
		assignmentRepo: params.AssignmentRepo,
		logger:         params.Logger,
	}
}

func (srv *assignmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *assignmentService) Create(ctx context.Context, userID string, input *usecase.CreateAssignmentInput) (*entity.Assignment, error) {
	assignment := &entity.Assignment{
		UserID:      userID,
		CourseID:    input.CourseID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      entity.AssignmentPending,
	}

	if err := srv.assignmentRepo.Create(ctx, assignment); err != nil {
		srv.log(ctx).Error("Failed to create assignment", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create assignment")
	}

	srv.log(ctx).Debug("Assignment created", slog.String("assignmentID", assignment.ID))

	return assignment, nil
}

func (srv *assignmentService) Get(ctx context.Context, userID, id string) (*entity.Assignment, error) {
	assignment, err := srv.assignmentRepo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, domainerrors.ErrAssignmentNotFound
		}

		return nil, errors.Wrap(err, "failed to load assignment")
	}

	return assignment, nil
}

func (srv *assignmentService) List(ctx context.Context, userID string, status entity.AssignmentStatus) ([]*entity.Assignment, error) {
	if status != "" && !status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown assignment status filter")
	}

	assignments, err := srv.assignmentRepo.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assignments")
	}

	return assignments, nil
}

func (srv *assignmentService) Update(ctx context.Context, userID, id string, input *usecase.UpdateAssignmentInput) (*entity.Assignment, error) {
	if input.Status != "" && !input.Status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown assignment status")
	}

	assignment, err := srv.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	assignment.CourseID = input.CourseID
	assignment.Title = input.Title
	assignment.Description = input.Description
	assignment.DueDate = input.DueDate
	if input.Status != "" {
		assignment.Status = input.Status
	}

	if err := srv.assignmentRepo.Update(ctx, assignment); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, domainerrors.ErrAssignmentNotFound
		}

		srv.log(ctx).Error("Failed to update assignment", slog.String("assignmentID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update assignment")
	}

	return assignment, nil
}

func (srv *assignmentService) Delete(ctx context.Context, userID, id string) error {
	if err := srv.assignmentRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return domainerrors.ErrAssignmentNotFound
		}

		return errors.Wrap(err, "failed to delete assignment")
	}

	srv.log(ctx).Debug("Assignment deleted", slog.String("assignmentID", id))

	return nil
}

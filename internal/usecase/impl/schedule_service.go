package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// scheduleService implements the ScheduleUsecase interface.
type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	logger       *slog.Logger
}

// ScheduleServiceParams holds dependencies for scheduleService, injected by Fx.
type ScheduleServiceParams struct {
	fx.In

	ScheduleRepo repository.ScheduleRepository
	Logger       *slog.Logger
}

// NewScheduleService is the constructor for scheduleService.
func NewScheduleService(params ScheduleServiceParams) usecase.ScheduleUsecase {
	return &scheduleService{
		scheduleRepo: params.ScheduleRepo,
		logger:       params.Logger,
	}
}

func (srv *scheduleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateSlot checks the weekday and the "15:04" wall-clock time strings.
func validateSlot(day time.Weekday, start, end string) error {
	if day < time.Sunday || day > time.Saturday {
		return domainerrors.ErrValidationFailed.WrapMessage("day of week out of range")
	}

	startAt, err := time.Parse("15:04", start)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("start time must be HH:MM")
	}

	endAt, err := time.Parse("15:04", end)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("end time must be HH:MM")
	}

	if !endAt.After(startAt) {
		return domainerrors.ErrValidationFailed.WrapMessage("end time must be after start time")
	}

	return nil
}

func (srv *scheduleService) Create(ctx context.Context, userID string, input *usecase.CreateScheduleInput) (*entity.ScheduleEntry, error) {
	if err := validateSlot(input.DayOfWeek, input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	entry := &entity.ScheduleEntry{
		UserID:    userID,
		CourseID:  input.CourseID,
		Title:     input.Title,
		DayOfWeek: input.DayOfWeek,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Location:  input.Location,
	}

	if err := srv.scheduleRepo.Create(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to create schedule entry", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create schedule entry")
	}

	srv.log(ctx).Debug("Schedule entry created", slog.String("scheduleID", entry.ID))

	return entry, nil
}

func (srv *scheduleService) Get(ctx context.Context, userID, id string) (*entity.ScheduleEntry, error) {
	entry, err := srv.scheduleRepo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return nil, domainerrors.ErrScheduleNotFound
		}

		return nil, errors.Wrap(err, "failed to load schedule entry")
	}

	return entry, nil
}

func (srv *scheduleService) List(ctx context.Context, userID string) ([]*entity.ScheduleEntry, error) {
	entries, err := srv.scheduleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list schedule entries")
	}

	return entries, nil
}

func (srv *scheduleService) Update(ctx context.Context, userID, id string, input *usecase.UpdateScheduleInput) (*entity.ScheduleEntry, error) {
	if err := validateSlot(input.DayOfWeek, input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	entry, err := srv.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	entry.CourseID = input.CourseID
	entry.Title = input.Title
	entry.DayOfWeek = input.DayOfWeek
	entry.StartTime = input.StartTime
	entry.EndTime = input.EndTime
	entry.Location = input.Location

	if err := srv.scheduleRepo.Update(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return nil, domainerrors.ErrScheduleNotFound
		}

		srv.log(ctx).Error("Failed to update schedule entry", slog.String("scheduleID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update schedule entry")
	}

	return entry, nil
}

func (srv *scheduleService) Delete(ctx context.Context, userID, id string) error {
	if err := srv.scheduleRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return domainerrors.ErrScheduleNotFound
		}

		return errors.Wrap(err, "failed to delete schedule entry")
	}

	srv.log(ctx).Debug("Schedule entry deleted", slog.String("scheduleID", id))

	return nil
}

package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	"planner/internal/domain/repository"
	"planner/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// replyLookahead is how far ahead the assistant looks for upcoming deadlines.
const replyLookahead = 7 * 24 * time.Hour

// chatService implements the ChatUsecase interface. The assistant reply is a
// deterministic summary of upcoming work rather than a model call.
type chatService struct {
	chatRepo       repository.ChatRepository
	assignmentRepo repository.AssignmentRepository
	logger         *slog.Logger
	now            func() time.Time
}

// ChatServiceParams holds dependencies for chatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo       repository.ChatRepository
	AssignmentRepo repository.AssignmentRepository
	Logger         *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatRepo:       params.ChatRepo,
		assignmentRepo: params.AssignmentRepo,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send stores the student's message and the assistant's reply as one exchange.
func (srv *chatService) Send(ctx context.Context, userID string, input *usecase.SendMessageInput) (*usecase.SendMessageOutput, error) {
	message := &entity.ChatMessage{
		UserID:  userID,
		Role:    entity.ChatRoleUser,
		Content: input.Content,
	}

	if err := srv.chatRepo.Append(ctx, message); err != nil {
		srv.log(ctx).Error("Failed to store chat message", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store chat message")
	}

	reply := &entity.ChatMessage{
		UserID:  userID,
		Role:    entity.ChatRoleAssistant,
		Content: srv.composeReply(ctx, userID),
	}

	if err := srv.chatRepo.Append(ctx, reply); err != nil {
		srv.log(ctx).Error("Failed to store assistant reply", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store assistant reply")
	}

	return &usecase.SendMessageOutput{Message: message, Reply: reply}, nil
}

// History returns the most recent messages in chronological order.
func (srv *chatService) History(ctx context.Context, userID string, limit int) ([]*entity.ChatMessage, error) {
	messages, err := srv.chatRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load chat history")
	}

	return messages, nil
}

// composeReply summarizes the student's pending assignments for the coming
// week. A failed lookup degrades to the generic reply instead of failing the
// whole exchange.
func (srv *chatService) composeReply(ctx context.Context, userID string) string {
	pending, err := srv.assignmentRepo.ListByUser(ctx, userID, entity.AssignmentPending)
	if err != nil {
		srv.log(ctx).Warn("Could not load assignments for reply", slog.String("userID", userID), slog.Any("error", err))

		return "Noted. I could not check your assignments right now."
	}

	now := srv.now()
	horizon := now.Add(replyLookahead)

	dueSoon := 0
	var next *entity.Assignment
	for _, a := range pending {
		if a.DueDate.Before(now) || !a.DueDate.Before(horizon) {
			continue
		}
		dueSoon++
		if next == nil || a.DueDate.Before(next.DueDate) {
			next = a
		}
	}

	if dueSoon == 0 {
		return "Noted. You have no assignments due in the next 7 days."
	}

	return fmt.Sprintf("Noted. You have %d assignment(s) due in the next 7 days. The next one is %q on %s.",
		dueSoon, next.Title, next.DueDate.Format("Mon Jan 2 15:04"))
}

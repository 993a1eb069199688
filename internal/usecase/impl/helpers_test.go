package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"planner/internal/domain/entity"
	"planner/internal/domain/repository"
	"planner/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- in-memory repository fakes ---

type fakeUserRepo struct {
	users  map[string]*entity.User // keyed by ID
	nextID int

	failAll error

	// raceDuplicate simulates a concurrent registration winning the unique
	// index race: lookups still miss, but the insert hits a duplicate key.
	raceDuplicate bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.failAll != nil {
		return r.failAll
	}
	if r.raceDuplicate {
		return repository.ErrDuplicateEmail
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

type fakeCourseRepo struct {
	courses map[string]*entity.Course
	nextID  int
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[string]*entity.Course{}}
}

func (r *fakeCourseRepo) Create(_ context.Context, course *entity.Course) error {
	r.nextID++
	course.ID = fmt.Sprintf("course-%d", r.nextID)
	clone := *course
	r.courses[course.ID] = &clone

	return nil
}

func (r *fakeCourseRepo) FindByID(_ context.Context, userID, id string) (*entity.Course, error) {
	if c, ok := r.courses[id]; ok && c.UserID == userID {
		clone := *c
		return &clone, nil
	}

	return nil, repository.ErrCourseNotFound
}

func (r *fakeCourseRepo) ListByUser(_ context.Context, userID string) ([]*entity.Course, error) {
	var out []*entity.Course
	for _, c := range r.courses {
		if c.UserID == userID {
			clone := *c
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *entity.Course) error {
	if c, ok := r.courses[course.ID]; !ok || c.UserID != course.UserID {
		return repository.ErrCourseNotFound
	}
	clone := *course
	r.courses[course.ID] = &clone

	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, userID, id string) error {
	if c, ok := r.courses[id]; !ok || c.UserID != userID {
		return repository.ErrCourseNotFound
	}
	delete(r.courses, id)

	return nil
}

type fakeAssignmentRepo struct {
	assignments map[string]*entity.Assignment
	nextID      int
	listErr     error
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: map[string]*entity.Assignment{}}
}

func (r *fakeAssignmentRepo) Create(_ context.Context, a *entity.Assignment) error {
	r.nextID++
	a.ID = fmt.Sprintf("assignment-%d", r.nextID)
	clone := *a
	r.assignments[a.ID] = &clone

	return nil
}

func (r *fakeAssignmentRepo) FindByID(_ context.Context, userID, id string) (*entity.Assignment, error) {
	if a, ok := r.assignments[id]; ok && a.UserID == userID {
		clone := *a
		return &clone, nil
	}

	return nil, repository.ErrAssignmentNotFound
}

func (r *fakeAssignmentRepo) ListByUser(_ context.Context, userID string, status entity.AssignmentStatus) ([]*entity.Assignment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*entity.Assignment
	for _, a := range r.assignments {
		if a.UserID != userID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		clone := *a
		out = append(out, &clone)
	}

	return out, nil
}

func (r *fakeAssignmentRepo) Update(_ context.Context, a *entity.Assignment) error {
	if existing, ok := r.assignments[a.ID]; !ok || existing.UserID != a.UserID {
		return repository.ErrAssignmentNotFound
	}
	clone := *a
	r.assignments[a.ID] = &clone

	return nil
}

func (r *fakeAssignmentRepo) Delete(_ context.Context, userID, id string) error {
	if a, ok := r.assignments[id]; !ok || a.UserID != userID {
		return repository.ErrAssignmentNotFound
	}
	delete(r.assignments, id)

	return nil
}

func (r *fakeAssignmentRepo) ListDueBetween(_ context.Context, from, to time.Time) ([]*entity.Assignment, error) {
	var out []*entity.Assignment
	for _, a := range r.assignments {
		if a.Status != entity.AssignmentPending {
			continue
		}
		if a.DueDate.Before(from) || !a.DueDate.Before(to) {
			continue
		}
		clone := *a
		out = append(out, &clone)
	}

	return out, nil
}

type fakeScheduleRepo struct {
	entries map[string]*entity.ScheduleEntry
	nextID  int
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{entries: map[string]*entity.ScheduleEntry{}}
}

func (r *fakeScheduleRepo) Create(_ context.Context, e *entity.ScheduleEntry) error {
	r.nextID++
	e.ID = fmt.Sprintf("schedule-%d", r.nextID)
	clone := *e
	r.entries[e.ID] = &clone

	return nil
}

func (r *fakeScheduleRepo) FindByID(_ context.Context, userID, id string) (*entity.ScheduleEntry, error) {
	if e, ok := r.entries[id]; ok && e.UserID == userID {
		clone := *e
		return &clone, nil
	}

	return nil, repository.ErrScheduleNotFound
}

func (r *fakeScheduleRepo) ListByUser(_ context.Context, userID string) ([]*entity.ScheduleEntry, error) {
	var out []*entity.ScheduleEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			clone := *e
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakeScheduleRepo) Update(_ context.Context, e *entity.ScheduleEntry) error {
	if existing, ok := r.entries[e.ID]; !ok || existing.UserID != e.UserID {
		return repository.ErrScheduleNotFound
	}
	clone := *e
	r.entries[e.ID] = &clone

	return nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, userID, id string) error {
	if e, ok := r.entries[id]; !ok || e.UserID != userID {
		return repository.ErrScheduleNotFound
	}
	delete(r.entries, id)

	return nil
}

type fakeChatRepo struct {
	messages []*entity.ChatMessage
	nextID   int
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{}
}

func (r *fakeChatRepo) Append(_ context.Context, m *entity.ChatMessage) error {
	r.nextID++
	m.ID = fmt.Sprintf("message-%d", r.nextID)
	m.CreatedAt = time.Now()
	clone := *m
	r.messages = append(r.messages, &clone)

	return nil
}

func (r *fakeChatRepo) ListByUser(_ context.Context, userID string, limit int) ([]*entity.ChatMessage, error) {
	var out []*entity.ChatMessage
	for _, m := range r.messages {
		if m.UserID == userID {
			clone := *m
			out = append(out, &clone)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}

	return out, nil
}

// --- service fakes ---

// fakeHasher is a transparent stand-in so tests can assert on stored hashes.
type fakeHasher struct {
	failHash error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.failHash != nil {
		return "", h.failHash
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct {
	failGenerate error
}

func (s *fakeTokenService) GenerateTokenPair(userID, email string) (*service.TokenPair, error) {
	if s.failGenerate != nil {
		return nil, s.failGenerate
	}

	return &service.TokenPair{
		AccessToken:  strings.Join([]string{"access", userID, email}, ":"),
		RefreshToken: strings.Join([]string{"refresh", userID, email}, ":"),
		TokenType:    "bearer",
	}, nil
}

func (s *fakeTokenService) ValidateToken(string) (*service.Claims, error) {
	return nil, service.ErrTokenMalformed
}

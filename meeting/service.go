package meeting

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

const (
	textCodeMeetingNotFound = "MEETING_NOT_FOUND"
	textCodeInvalidID       = "INVALID_MEETING_ID"
)

// ErrMeetingNotFound covers both unknown ids and meetings owned by a
// different creator; the two cases are indistinguishable to the caller.
var ErrMeetingNotFound = goerrors.New("meeting not found", goerrors.CategoryNotFound).
	WithTextCode(textCodeMeetingNotFound).
	WithCode(goerrors.CodeNotFound)

// ErrInvalidID is returned for ids that are not well formed.
var ErrInvalidID = goerrors.New("invalid meeting ID format", goerrors.CategoryValidation).
	WithTextCode(textCodeInvalidID).
	WithCode(goerrors.CodeBadRequest)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Store is the persistence contract for meetings. Lookups are scoped to a
// creator except ListAll, which backs the manager overview.
type Store interface {
	Insert(ctx context.Context, m *Meeting) (*Meeting, error)
	FindByCreator(ctx context.Context, creatorID string, f Filter) ([]*Meeting, error)
	FindByID(ctx context.Context, id, creatorID string) (*Meeting, error)
	Cancel(ctx context.Context, id, creatorID string, at time.Time) (*Meeting, error)
	FindAll(ctx context.Context, f Filter) ([]*Meeting, error)
}

// Notifier informs the meeting's client that a meeting has been scheduled.
type Notifier interface {
	SendMeetingNotice(ctx context.Context, email string, m *Meeting) error
}

// Service implements meeting CRUD scoped to the creator identity resolved
// by the authorization gate.
type Service struct {
	store    Store
	notifier Notifier
	logger   Logger
	now      func() time.Time
}

func NewService(store Store, notifier Notifier, logger Logger) *Service {
	if logger == nil {
		logger = defLogger{}
	}
	return &Service{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock injects a custom clock (useful for tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// Create schedules a new pending meeting and notifies the client email.
// Delivery is fire-and-forget, mirroring the code delivery in signup.
func (s *Service) Create(ctx context.Context, creatorID string, in CreateInput) (*Meeting, error) {
	if err := validation.ValidateStruct(&in,
		validation.Field(&in.ClientName, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.Date, validation.Required),
		validation.Field(&in.Time, validation.Required),
		validation.Field(&in.Location, validation.Required),
	); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid meeting payload").
			WithCode(goerrors.CodeBadRequest)
	}

	m := &Meeting{
		ID:          uuid.New().String(),
		CreatorID:   creatorID,
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Description: in.Description,
		Status:      StatusPending,
		CreatedAt:   s.now().UTC(),
	}

	created, err := s.store.Insert(ctx, m)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not create meeting")
	}

	if s.notifier != nil && created.ClientEmail != "" {
		s.notify(created)
	}

	return created, nil
}

// List returns the caller's meetings, newest first, honoring filters.
func (s *Service) List(ctx context.Context, creatorID string, f Filter) ([]*Meeting, error) {
	meetings, err := s.store.FindByCreator(ctx, creatorID, f)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not list meetings")
	}
	return meetings, nil
}

// ListAll returns meetings across all creators. Callers must hold the
// manager role; the HTTP layer enforces that before delegating here.
func (s *Service) ListAll(ctx context.Context, f Filter) ([]*Meeting, error) {
	meetings, err := s.store.FindAll(ctx, f)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not list meetings")
	}
	return meetings, nil
}

// Get returns a single meeting owned by the caller.
func (s *Service) Get(ctx context.Context, creatorID, id string) (*Meeting, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	m, err := s.store.FindByID(ctx, id, creatorID)
	if err != nil {
		if goerrors.IsNotFound(err) {
			return nil, ErrMeetingNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not retrieve meeting")
	}
	return m, nil
}

// Cancel marks a meeting as cancelled. Cancelled meetings stay queryable.
func (s *Service) Cancel(ctx context.Context, creatorID, id string) (*Meeting, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	m, err := s.store.Cancel(ctx, id, creatorID, s.now().UTC())
	if err != nil {
		if goerrors.IsNotFound(err) {
			return nil, ErrMeetingNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not cancel meeting")
	}
	return m, nil
}

func (s *Service) notify(m *Meeting) {
	meetingCopy := *m
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.notifier.SendMeetingNotice(ctx, meetingCopy.ClientEmail, &meetingCopy); err != nil {
			s.logger.Error("meeting notification delivery failed",
				"meeting_id", meetingCopy.ID,
				"error", err,
			)
		}
	}()
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID.Clone().WithMetadata(map[string]any{"id": id})
	}
	return nil
}

type defLogger struct{}

func (defLogger) Debug(string, ...any) {}
func (defLogger) Info(string, ...any)  {}
func (defLogger) Warn(string, ...any)  {}
func (defLogger) Error(msg string, args ...any) {
	fmt.Printf("[ERR] MEETING %s %v\n", msg, args)
}

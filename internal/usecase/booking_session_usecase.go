package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"skiphire/internal/domain/entities"
	"skiphire/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("booking session not found")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrInvalidLocation  = errors.New("invalid location")
)

// IBookingSessionUseCase exposes the skip selection page as booking sessions.
//
// Page lifecycle mapping:
//   - page mount => StartSession() (first load)
//   - retry button / location change => ReloadSession()
//   - card click / pointer enter-leave => SelectSkip() / HoverSkip()
//   - page dismissed => EndSession()

type IBookingSessionUseCase interface {
	StartSession(ctx context.Context, postcode, area string, wait bool) (entities.BookingSnapshot, error)
	GetSession(ctx context.Context, id string, wait bool) (entities.BookingSnapshot, error)
	ReloadSession(ctx context.Context, id, postcode, area string, wait bool) (entities.BookingSnapshot, error)
	SelectSkip(ctx context.Context, id string, skipID int) (entities.BookingSnapshot, error)
	HoverSkip(ctx context.Context, id string, skipID *int) (entities.BookingSnapshot, error)
	EndSession(ctx context.Context, id string) error
}

// SessionDefaults holds the location used when a session starts without one.
type SessionDefaults struct {
	Postcode string
	Area     string
	IdleTTL  time.Duration
}

type BookingSessionUseCase struct {
	source   interfaces.ISkipSource
	defaults SessionDefaults
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*BookingSession
}

var _ IBookingSessionUseCase = (*BookingSessionUseCase)(nil)

func NewBookingSessionUseCase(source interfaces.ISkipSource, defaults SessionDefaults) *BookingSessionUseCase {
	return &BookingSessionUseCase{
		source:   source,
		defaults: defaults,
		now:      func() time.Time { return time.Now().UTC() },
		sessions: make(map[string]*BookingSession),
	}
}

func (u *BookingSessionUseCase) StartSession(ctx context.Context, postcode, area string, wait bool) (entities.BookingSnapshot, error) {
	postcode, area, err := u.resolveLocation(postcode, area, "", "")
	if err != nil {
		return entities.BookingSnapshot{}, err
	}

	now := u.now()
	s := NewBookingSession(uuid.NewString(), u.source, now)

	u.mu.Lock()
	u.sessions[s.ID] = s
	u.mu.Unlock()
	log.Printf("[booking][usecase] session started session_id=%s postcode=%q area=%q", s.ID, postcode, area)

	if _, err := s.Load(postcode, area); err != nil {
		return entities.BookingSnapshot{}, err
	}
	return u.snapshot(ctx, s, wait)
}

func (u *BookingSessionUseCase) GetSession(ctx context.Context, id string, wait bool) (entities.BookingSnapshot, error) {
	s, err := u.lookup(id)
	if err != nil {
		return entities.BookingSnapshot{}, err
	}
	s.Touch(u.now())
	return u.snapshot(ctx, s, wait)
}

// ReloadSession re-runs the load, optionally for a new location. Empty
// postcode and area keep the session's current location.
func (u *BookingSessionUseCase) ReloadSession(ctx context.Context, id, postcode, area string, wait bool) (entities.BookingSnapshot, error) {
	s, err := u.lookup(id)
	if err != nil {
		return entities.BookingSnapshot{}, err
	}

	curPostcode, curArea := s.Location()
	postcode, area, err = u.resolveLocation(postcode, area, curPostcode, curArea)
	if err != nil {
		return entities.BookingSnapshot{}, err
	}

	log.Printf("[booking][usecase] reload session_id=%s postcode=%q area=%q", s.ID, postcode, area)
	if _, err := s.Load(postcode, area); err != nil {
		if errors.Is(err, ErrFetchControllerClosed) {
			return entities.BookingSnapshot{}, ErrSessionNotFound
		}
		return entities.BookingSnapshot{}, err
	}
	s.Touch(u.now())
	return u.snapshot(ctx, s, wait)
}

func (u *BookingSessionUseCase) SelectSkip(ctx context.Context, id string, skipID int) (entities.BookingSnapshot, error) {
	s, err := u.lookup(id)
	if err != nil {
		return entities.BookingSnapshot{}, err
	}
	if err := s.Select(skipID); err != nil {
		log.Printf("[booking][usecase] select rejected session_id=%s skip_id=%d err=%v", s.ID, skipID, err)
		return entities.BookingSnapshot{}, err
	}
	s.Touch(u.now())
	return s.Snapshot(), nil
}

func (u *BookingSessionUseCase) HoverSkip(ctx context.Context, id string, skipID *int) (entities.BookingSnapshot, error) {
	s, err := u.lookup(id)
	if err != nil {
		return entities.BookingSnapshot{}, err
	}
	s.SetHovered(skipID)
	s.Touch(u.now())
	return s.Snapshot(), nil
}

func (u *BookingSessionUseCase) EndSession(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSessionID
	}

	u.mu.Lock()
	s, ok := u.sessions[id]
	delete(u.sessions, id)
	u.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	s.Close()
	log.Printf("[booking][usecase] session ended session_id=%s", id)
	return nil
}

// Session returns the live session for id. Used by the quote flow.
func (u *BookingSessionUseCase) Session(id string) (*BookingSession, error) {
	return u.lookup(id)
}

// ExpireIdle tears down every session idle for longer than the configured TTL.
func (u *BookingSessionUseCase) ExpireIdle() int {
	ttl := u.defaults.IdleTTL
	if ttl <= 0 {
		return 0
	}
	now := u.now()

	u.mu.Lock()
	var expired []*BookingSession
	for id, s := range u.sessions {
		if s.IdleSince(now) > ttl {
			expired = append(expired, s)
			delete(u.sessions, id)
		}
	}
	u.mu.Unlock()

	for _, s := range expired {
		s.Close()
		log.Printf("[booking][usecase] session expired session_id=%s", s.ID)
	}
	return len(expired)
}

// Count returns the number of live sessions.
func (u *BookingSessionUseCase) Count() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.sessions)
}

func (u *BookingSessionUseCase) lookup(id string) (*BookingSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidSessionID
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidSessionID
	}

	u.mu.RLock()
	s, ok := u.sessions[id]
	u.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (u *BookingSessionUseCase) snapshot(ctx context.Context, s *BookingSession, wait bool) (entities.BookingSnapshot, error) {
	if wait {
		if _, err := s.Await(ctx); err != nil {
			if errors.Is(err, ErrFetchControllerClosed) {
				return entities.BookingSnapshot{}, ErrSessionNotFound
			}
			return entities.BookingSnapshot{}, err
		}
	}
	return s.Snapshot(), nil
}

// resolveLocation trims the requested location and falls back first to the
// current one and then to the configured defaults. Postcode and area must
// be given together.
func (u *BookingSessionUseCase) resolveLocation(postcode, area, curPostcode, curArea string) (string, string, error) {
	postcode = strings.TrimSpace(postcode)
	area = strings.TrimSpace(area)

	if postcode == "" && area == "" {
		postcode, area = curPostcode, curArea
		if postcode == "" && area == "" {
			postcode, area = u.defaults.Postcode, u.defaults.Area
		}
	}
	if postcode == "" || area == "" {
		return "", "", ErrInvalidLocation
	}
	return postcode, area, nil
}

package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"skiphire/internal/domain/entities"
	"skiphire/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrInvalidQuoteID = errors.New("invalid quote id")
	ErrNoSelection    = errors.New("no skip selected")
)

// IQuoteUseCase turns a session's selection into a persisted quote.
//
//   - "Continue to Delivery Options" => CreateFromSession()
//   - later booking steps read it back => GetByID()

type IQuoteUseCase interface {
	CreateFromSession(ctx context.Context, sessionID string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]entities.Quote, error)
}

type sessionLookup interface {
	Session(id string) (*BookingSession, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	sessions sessionLookup
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, sessions sessionLookup) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, sessions: sessions}
}

func (u *QuoteUseCase) CreateFromSession(ctx context.Context, sessionID string) (entities.Quote, error) {
	s, err := u.sessions.Session(sessionID)
	if err != nil {
		return entities.Quote{}, err
	}

	skip, ok := s.SelectedSkip()
	if !ok {
		log.Printf("[quote][usecase] no visible selection session_id=%s", s.ID)
		return entities.Quote{}, ErrNoSelection
	}
	postcode, area := s.Location()

	q := entities.Quote{
		ID:             uuid.NewString(),
		SessionID:      s.ID,
		SkipID:         skip.ID,
		Size:           skip.Size,
		HirePeriodDays: skip.HirePeriodDays,
		PriceBeforeVAT: skip.PriceBeforeVAT,
		VAT:            skip.VAT,
		TotalPrice:     ComputeTotal(skip),
		PermitRequired: IsPermitRequired(skip),
		Postcode:       postcode,
		Area:           area,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] repository create failed session_id=%s err=%v", s.ID, err)
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] quote created quote_id=%s session_id=%s skip_id=%d total=%.2f", created.ID, s.ID, created.SkipID, created.TotalPrice)
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListBySessionID(ctx context.Context, sessionID string) ([]entities.Quote, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	return u.repo.ListBySessionID(ctx, sessionID)
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	response "skiphire/internal/adapter/http/dto/response"
	"skiphire/internal/usecase"
	"skiphire/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler persists and serves quotes for the selected skip.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary      Quote the selected skip
// @Tags         quotes
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      201         {object}  response.QuoteResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/quote [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	sessionID := c.Param("session_id")
	log.Printf("[quote][handler] create start session_id=%s", sessionID)

	q, err := h.usecase.CreateFromSession(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[quote][handler] create failed session_id=%s err=%v", sessionID, err)
		writeAppError(c, mapQuoteError(err))
		return
	}
	log.Printf("[quote][handler] create success session_id=%s quote_id=%s total=%s", sessionID, q.ID, response.FromQuote(q).FormattedTotal)

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// ListSessionQuotes godoc
// @Summary      Quotes created for a session
// @Tags         quotes
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {array}   response.QuoteResponse
// @Failure      400         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/quotes [get]
func (h *QuoteHandler) ListSessionQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListBySessionID(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeAppError(c, mapQuoteError(err))
		return
	}

	out := make([]response.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, response.FromQuote(q))
	}
	c.JSON(http.StatusOK, out)
}

// GetQuote godoc
// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Param        quote_id  path      string  true  "Quote ID"
// @Success      200       {object}  response.QuoteResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Router       /quotes/{quote_id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		writeAppError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Booking session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoSelection):
		return pkg.NewDomainErrorSimple("NO_SELECTION", "Select a skip before continuing", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

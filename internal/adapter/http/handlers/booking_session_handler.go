package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	request "skiphire/internal/adapter/http/dto/request"
	response "skiphire/internal/adapter/http/dto/response"
	"skiphire/internal/domain/entities"
	"skiphire/internal/usecase"
	"skiphire/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid booking session payload", http.StatusBadRequest)
	errInvalidWaitParam      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "wait must be a boolean", http.StatusBadRequest)
)

// BookingSessionHandler serves the skip selection page state.

type BookingSessionHandler struct {
	usecase usecase.IBookingSessionUseCase
}

func NewBookingSessionHandler(uc usecase.IBookingSessionUseCase) *BookingSessionHandler {
	return &BookingSessionHandler{usecase: uc}
}

// StartSession godoc
// @Summary      Start a booking session
// @Description  Creates a session and starts loading the skips for the location. Empty body uses the default location.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        wait     query     bool                     false  "Block until the skip list settles"
// @Param        payload  body      request.LocationRequest  false  "Location"
// @Success      201      {object}  response.BookingSessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /sessions [post]
func (h *BookingSessionHandler) StartSession(c *gin.Context) {
	wait, ok := parseWait(c)
	if !ok {
		return
	}
	var payload request.LocationRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	postcode, area := payload.Resolve()
	snap, err := h.usecase.StartSession(c.Request.Context(), postcode, area, wait)
	if err != nil {
		log.Printf("[booking][handler] start failed postcode=%q area=%q err=%v", postcode, area, err)
		writeAppError(c, mapBookingSessionError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromBookingSnapshot(snap))
}

// GetSession godoc
// @Summary      Get a booking session
// @Tags         sessions
// @Produce      json
// @Param        session_id  path      string  true   "Session ID"
// @Param        wait        query     bool    false  "Block until the skip list settles"
// @Success      200         {object}  response.BookingSessionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /sessions/{session_id} [get]
func (h *BookingSessionHandler) GetSession(c *gin.Context) {
	wait, ok := parseWait(c)
	if !ok {
		return
	}

	snap, err := h.usecase.GetSession(c.Request.Context(), c.Param("session_id"), wait)
	if err != nil {
		writeAppError(c, mapBookingSessionError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromBookingSnapshot(snap))
}

// ReloadSession godoc
// @Summary      Reload the skip list
// @Description  Retries the load or switches location. The previous in-flight load is cancelled.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                   true   "Session ID"
// @Param        wait        query     bool                     false  "Block until the skip list settles"
// @Param        payload     body      request.LocationRequest  false  "Location"
// @Success      200         {object}  response.BookingSessionResponse
// @Success      202         {object}  response.BookingSessionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/reload [post]
func (h *BookingSessionHandler) ReloadSession(c *gin.Context) {
	wait, ok := parseWait(c)
	if !ok {
		return
	}
	var payload request.LocationRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	postcode, area := payload.Resolve()
	snap, err := h.usecase.ReloadSession(c.Request.Context(), c.Param("session_id"), postcode, area, wait)
	if err != nil {
		log.Printf("[booking][handler] reload failed session_id=%s err=%v", c.Param("session_id"), err)
		writeAppError(c, mapBookingSessionError(err))
		return
	}

	status := http.StatusAccepted
	if wait {
		status = http.StatusOK
	}
	c.JSON(status, response.FromBookingSnapshot(snap))
}

// SelectSkip godoc
// @Summary      Select a skip
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                     true  "Session ID"
// @Param        payload     body      request.SelectSkipRequest  true  "Skip to select"
// @Success      200         {object}  response.BookingSessionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      422         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/selection [put]
func (h *BookingSessionHandler) SelectSkip(c *gin.Context) {
	var payload request.SelectSkipRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidSessionPayload)
		return
	}
	skipID, err := payload.ResolveSkipID()
	if err != nil {
		writeAppError(c, errInvalidSessionPayload)
		return
	}

	snap, err := h.usecase.SelectSkip(c.Request.Context(), c.Param("session_id"), skipID)
	if err != nil {
		writeAppError(c, mapBookingSessionError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromBookingSnapshot(snap))
}

// HoverSkip godoc
// @Summary      Set or clear the hovered skip
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                    true  "Session ID"
// @Param        payload     body      request.HoverSkipRequest  true  "Skip to hover, null clears"
// @Success      200         {object}  response.BookingSessionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/hover [put]
func (h *BookingSessionHandler) HoverSkip(c *gin.Context) {
	var payload request.HoverSkipRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	snap, err := h.usecase.HoverSkip(c.Request.Context(), c.Param("session_id"), payload.SkipID)
	if err != nil {
		writeAppError(c, mapBookingSessionError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromBookingSnapshot(snap))
}

// EndSession godoc
// @Summary      End a booking session
// @Tags         sessions
// @Param        session_id  path  string  true  "Session ID"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id} [delete]
func (h *BookingSessionHandler) EndSession(c *gin.Context) {
	if err := h.usecase.EndSession(c.Request.Context(), c.Param("session_id")); err != nil {
		writeAppError(c, mapBookingSessionError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSteps godoc
// @Summary      Booking progress steps
// @Tags         booking
// @Produce      json
// @Success      200  {object}  response.StepsResponse
// @Router       /booking/steps [get]
func (h *BookingSessionHandler) GetSteps(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromBookingSteps(entities.BookingSteps(entities.ActiveStepLabel)))
}

// parseWait reads ?wait=; it writes the 400 itself when the value is not a bool.
func parseWait(c *gin.Context) (bool, bool) {
	raw := c.Query("wait")
	if raw == "" {
		return false, true
	}
	wait, err := strconv.ParseBool(raw)
	if err != nil {
		writeAppError(c, errInvalidWaitParam)
		return false, false
	}
	return wait, true
}

// bindOptionalJSON binds the body when there is one. An empty body is valid.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		writeAppError(c, errInvalidSessionPayload)
		return false
	}
	return true
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapBookingSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid session id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLocation):
		return pkg.NewDomainErrorSimple("INVALID_LOCATION", "Postcode and area must be given together", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Booking session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidSelection):
		return pkg.NewDomainErrorSimple("INVALID_SELECTION", "Skip is not in the available list", http.StatusUnprocessableEntity)
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("FETCH_TIMEOUT", "Timed out waiting for skip sizes", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

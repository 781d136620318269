package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lmrc/boathouse/internal/domain/sessions"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler defines the interface for handling session timetable operations
type SessionHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type sessionHandler struct {
	sessionService sessions.SessionService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessionService sessions.SessionService) SessionHandler {
	return &sessionHandler{
		sessionService: sessionService,
	}
}

// List handles the GET request to list all sessions in display order.
func (handler *sessionHandler) List(ctx *gin.Context) {
	sessionList, err := handler.sessionService.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, newErrorResponse(fmt.Sprintf("error listing sessions: %v", err), err))
		return
	}

	listResponse := make([]SessionResponse, len(sessionList))
	for i, s := range sessionList {
		listResponse[i] = newSessionResponse(s)
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request for a single session.
func (handler *sessionHandler) GetByID(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	session, err := handler.sessionService.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, newErrorResponse(fmt.Sprintf("session %q not found", sessionID), nil))
			return
		}
		ctx.JSON(http.StatusInternalServerError, newErrorResponse(fmt.Sprintf("error fetching session: %v", err), err))
		return
	}

	ctx.JSON(http.StatusOK, newSessionResponse(session))
}

// Create handles the POST request to add a session to the timetable. An
// invalid proposal is rejected with the complete violation set and nothing
// is stored.
func (handler *sessionHandler) Create(ctx *gin.Context) {
	var request SessionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse(fmt.Sprintf("invalid session data: %v", err), err))
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse("validation failed", err))
		return
	}

	// TODO: derive the acting identity from the authenticated member once
	// revSport auth is wired in.
	modifiedBy := uuid.New().String()

	if err := handler.sessionService.Create(ctx, request.ToDomain(), modifiedBy); err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse("validation failed", err))
		return
	}

	ctx.JSON(http.StatusCreated, newSessionResponse(request.ToDomain()))
}

// UpdateByID handles the PUT request to replace a session.
func (handler *sessionHandler) UpdateByID(ctx *gin.Context) {
	var request SessionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse(fmt.Sprintf("invalid session data: %v", err), err))
		return
	}
	request.ID = ctx.Param("id")

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse("validation failed", err))
		return
	}

	modifiedBy := uuid.New().String()

	if err := handler.sessionService.UpdateByID(ctx, request.ToDomain(), modifiedBy); err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, newErrorResponse(fmt.Sprintf("session %q not found", request.ID), nil))
			return
		}
		ctx.JSON(http.StatusBadRequest, newErrorResponse("validation failed", err))
		return
	}

	ctx.JSON(http.StatusOK, newSessionResponse(request.ToDomain()))
}

// DeleteByID handles the DELETE request to remove a session.
func (handler *sessionHandler) DeleteByID(ctx *gin.Context) {
	sessionID := ctx.Param("id")
	modifiedBy := uuid.New().String()

	if err := handler.sessionService.DeleteByID(ctx, sessionID, modifiedBy); err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, newErrorResponse(fmt.Sprintf("session %q not found", sessionID), nil))
			return
		}
		ctx.JSON(http.StatusInternalServerError, newErrorResponse(fmt.Sprintf("error deleting session: %v", err), err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

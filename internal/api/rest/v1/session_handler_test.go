//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lmrc/boathouse/internal/domain/sessions"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupSessionRouter(service sessions.SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewSessionHandler(service)
	r.GET("/sessions", handler.List)
	r.GET("/sessions/:id", handler.GetByID)
	r.POST("/sessions", handler.Create)
	r.PUT("/sessions/:id", handler.UpdateByID)
	r.DELETE("/sessions/:id", handler.DeleteByID)
	return r
}

func validRequestBody() []byte {
	body, _ := json.Marshal(SessionRequest{
		ID:         "PM",
		Name:       "Twilight",
		StartTime:  "16:30",
		EndTime:    "18:30",
		DaysOfWeek: []int{2, 4},
		Color:      "#F5821F",
		Priority:   2,
	})
	return body
}

func TestSessionHandler_List(t *testing.T) {
	mockService := new(MockSessionService)
	mockService.On("List", mock.Anything).Return([]*sessions.Session{
		{ID: "AM", Name: "Morning", StartTime: "06:30", EndTime: "08:30", DaysOfWeek: []int{1}, Color: "#1E5AA8", Priority: 1},
	}, nil)

	r := setupSessionRouter(mockService)

	req, _ := http.NewRequest("GET", "/sessions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response []SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "AM", response[0].ID)
	assert.Equal(t, "Morning 6:30 AM–8:30 AM", response[0].Display)
}

func TestSessionHandler_GetByID_NotFound(t *testing.T) {
	mockService := new(MockSessionService)
	mockService.On("GetByID", mock.Anything, "XX").Return(nil, sessions.ErrNotFound)

	r := setupSessionRouter(mockService)

	req, _ := http.NewRequest("GET", "/sessions/XX", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionHandler_Create(t *testing.T) {
	mockService := new(MockSessionService)
	mockService.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	r := setupSessionRouter(mockService)

	req, _ := http.NewRequest("POST", "/sessions", bytes.NewReader(validRequestBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionHandler_Create_RejectsInvalidSessionWithViolations(t *testing.T) {
	mockService := new(MockSessionService)

	r := setupSessionRouter(mockService)

	body, _ := json.Marshal(SessionRequest{
		ID:        "PM",
		Name:      "Twilight",
		StartTime: "18:30",
		EndTime:   "16:30",
		Color:     "#ABC",
	})
	req, _ := http.NewRequest("POST", "/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Violations)

	// nothing reaches the service on a schema rejection
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionHandler_UpdateByID_UsesPathID(t *testing.T) {
	mockService := new(MockSessionService)
	mockService.On("UpdateByID", mock.Anything, mock.MatchedBy(func(s *sessions.Session) bool {
		return s.ID == "AM"
	}), mock.Anything).Return(nil)

	r := setupSessionRouter(mockService)

	body, _ := json.Marshal(SessionRequest{
		Name:       "Morning",
		StartTime:  "05:45",
		EndTime:    "07:45",
		DaysOfWeek: []int{1, 3, 5},
		Color:      "#1E5AA8",
		Priority:   1,
	})
	req, _ := http.NewRequest("PUT", "/sessions/AM", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestSessionHandler_DeleteByID(t *testing.T) {
	mockService := new(MockSessionService)
	mockService.On("DeleteByID", mock.Anything, "AM", mock.Anything).Return(nil)

	r := setupSessionRouter(mockService)

	req, _ := http.NewRequest("DELETE", "/sessions/AM", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

package notification

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/ndayishimiyefidel/recipe-backend/internal/config"
	mocks "github.com/ndayishimiyefidel/recipe-backend/internal/mocks/api/handlers/notification"
	"github.com/ndayishimiyefidel/recipe-backend/internal/model"
	notifrepo "github.com/ndayishimiyefidel/recipe-backend/internal/repository/notification"
	notifsvc "github.com/ndayishimiyefidel/recipe-backend/internal/service/notification"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocknotificationService, *config.Config) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mocks.NewMocknotificationService(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{Attempts: 1, Delay: time.Millisecond}}
	validate := validator.New()
	handler := NewHandler(mockService, validate, cfg)

	return handler, mockService, cfg
}

func authedContext(w *httptest.ResponseRecorder, req *http.Request, userID uuid.UUID) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("user_id", userID)
	return c
}

func TestHandler_Create_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	userID := uuid.New()
	reqBody := CreateRequest{
		Title:         "Meal Reminder",
		Body:          "It's time to prepare your lunch recipe.",
		MealType:      "Lunch",
		ScheduledTime: "2025-09-15T10:00:00Z",
		PushToken:     "ExponentPushToken[abc]",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	c := authedContext(w, req, userID)

	scheduledTime, _ := time.Parse(time.RFC3339, reqBody.ScheduledTime)
	notif := model.Notification{
		UserID:        userID,
		Title:         reqBody.Title,
		Body:          reqBody.Body,
		MealType:      reqBody.MealType,
		ScheduledTime: scheduledTime,
		Status:        model.StatusPending,
		PushToken:     reqBody.PushToken,
	}

	mockService.EXPECT().
		Create(gomock.Any(), cfg.Retry, notif).
		Return(uuid.New(), nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_BadScheduledTime(t *testing.T) {
	handler, _, _ := setupHandler(t)

	reqBody := CreateRequest{
		Title:         "Meal Reminder",
		ScheduledTime: "next tuesday",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	c := authedContext(w, req, uuid.New())

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Create_MissingTitle(t *testing.T) {
	handler, _, _ := setupHandler(t)

	reqBody := CreateRequest{ScheduledTime: "2025-09-15T10:00:00Z"}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	c := authedContext(w, req, uuid.New())

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Create_Unauthenticated(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestHandler_GetStatus_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/"+id.String()+"/status", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetStatusByID(gomock.Any(), cfg.Retry, id).
		Return(model.StatusSent, nil)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "sent")
}

func TestHandler_GetStatus_NotFound(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/"+id.String()+"/status", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetStatusByID(gomock.Any(), cfg.Retry, id).
		Return(model.Status(""), notifrepo.ErrNotificationNotFound)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_List_WithStatusFilter(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications?status=failed", nil)
	w := httptest.NewRecorder()
	c := authedContext(w, req, userID)

	mockService.EXPECT().
		ListByOwner(gomock.Any(), userID, model.StatusFailed).
		Return([]model.Notification{{ID: uuid.New(), UserID: userID, Status: model.StatusFailed}}, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_List_UnknownStatus(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications?status=archived", nil)
	w := httptest.NewRecorder()
	c := authedContext(w, req, userID)

	mockService.EXPECT().
		ListByOwner(gomock.Any(), userID, model.Status("archived")).
		Return(nil, notifsvc.ErrValidation)

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_OverrideStatus_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	userID := uuid.New()
	id := uuid.New()

	bodyBytes, _ := json.Marshal(StatusRequest{Status: "failed"})
	req := httptest.NewRequest(http.MethodPut, "/api/notifications/"+id.String()+"/status", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	c := authedContext(w, req, userID)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		OverrideStatus(gomock.Any(), cfg.Retry, id, userID, model.StatusFailed).
		Return(nil)

	handler.OverrideStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_OverrideStatus_TerminalConflict(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	userID := uuid.New()
	id := uuid.New()

	bodyBytes, _ := json.Marshal(StatusRequest{Status: "failed"})
	req := httptest.NewRequest(http.MethodPut, "/api/notifications/"+id.String()+"/status", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	c := authedContext(w, req, userID)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		OverrideStatus(gomock.Any(), cfg.Retry, id, userID, model.StatusFailed).
		Return(notifsvc.ErrInvalidTransition)

	handler.OverrideStatus(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}

func TestHandler_Delete_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	userID := uuid.New()
	id := uuid.New()

	req := httptest.NewRequest(http.MethodDelete, "/api/notifications/"+id.String(), nil)
	w := httptest.NewRecorder()
	c := authedContext(w, req, userID)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		Delete(gomock.Any(), id, userID).
		Return(nil)

	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Delete_NotFound(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	userID := uuid.New()
	id := uuid.New()

	req := httptest.NewRequest(http.MethodDelete, "/api/notifications/"+id.String(), nil)
	w := httptest.NewRecorder()
	c := authedContext(w, req, userID)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		Delete(gomock.Any(), id, userID).
		Return(notifrepo.ErrNotificationNotFound)

	handler.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

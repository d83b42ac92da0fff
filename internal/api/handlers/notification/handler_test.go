package notification

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/mati-tech/microservices1112/internal/mocks/api/handlers/notification"
	"github.com/mati-tech/microservices1112/internal/model"
	"github.com/mati-tech/microservices1112/internal/repository/notification"
	notifsvc "github.com/mati-tech/microservices1112/internal/service/notification"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocknotificationService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocknotificationService(ctrl)
	handler := NewHandler(mockService, validator.New())
	return handler, mockService
}

func newContext(method, target string, body []byte, p gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	c.Params = p
	return c, w
}

func idParam(id string) gin.Params {
	return gin.Params{{Key: "id", Value: id}}
}

func validBody(t *testing.T) []byte {
	body, err := json.Marshal(CreateRequest{RecipientEmail: "a@b.com", Subject: "S", Message: "M"})
	require.NoError(t, err)
	return body
}

func TestHandler_Send_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	mockService.EXPECT().
		Send(gomock.Any(), model.Notification{
			RecipientEmail: "a@b.com",
			Subject:        "S",
			Message:        "M",
			Kind:           model.KindEmail,
		}).
		Return(model.Notification{ID: 1, RecipientEmail: "a@b.com", Status: model.StatusPending, Kind: model.KindEmail}, nil)

	c, w := newContext(http.MethodPost, "/notifications/send", validBody(t), nil)
	handler.Send(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got model.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.Nil(t, got.SentAt)
}

func TestHandler_Send_ValidationErrors(t *testing.T) {
	handler, _ := setupHandler(t)

	bodies := []string{
		`{"recipient_email":"not-an-email","subject":"S","message":"M"}`,
		`{"recipient_email":"a@b.com","subject":"","message":"M"}`,
		`{"recipient_email":"a@b.com","subject":"S","message":""}`,
		`{"recipient_email":"a@b.com","subject":"S","message":"M","notification_type":"fax"}`,
		`{"recipient_email":"a@b.com","subject":"` + strings.Repeat("x", 256) + `","message":"M"}`,
		`{not json`,
	}

	for _, body := range bodies {
		c, w := newContext(http.MethodPost, "/notifications/send", []byte(body), nil)
		handler.Send(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, body)
	}
}

func TestHandler_Send_StorageError(t *testing.T) {
	handler, mockService := setupHandler(t)

	mockService.EXPECT().Send(gomock.Any(), gomock.Any()).Return(model.Notification{}, errors.New("db down"))

	c, w := newContext(http.MethodPost, "/notifications/send", validBody(t), nil)
	handler.Send(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestHandler_SendNow_ReturnsFinalRecord(t *testing.T) {
	handler, mockService := setupHandler(t)

	now := time.Now()
	mockService.EXPECT().
		SendNow(gomock.Any(), gomock.Any()).
		Return(model.Notification{ID: 2, Status: model.StatusSent, SentAt: &now}, nil)

	c, w := newContext(http.MethodPost, "/notifications/send-now", validBody(t), nil)
	handler.SendNow(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var got model.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, model.StatusSent, got.Status)
	assert.NotNil(t, got.SentAt)
}

func TestHandler_Get(t *testing.T) {
	handler, mockService := setupHandler(t)

	mockService.EXPECT().GetNotification(gomock.Any(), int64(1)).Return(model.Notification{ID: 1}, nil)
	mockService.EXPECT().GetNotification(gomock.Any(), int64(999999)).Return(model.Notification{}, notification.ErrNotificationNotFound)

	c, w := newContext(http.MethodGet, "/notifications/1", nil, idParam("1"))
	handler.Get(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodGet, "/notifications/999999", nil, idParam("999999"))
	handler.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")

	c, w = newContext(http.MethodGet, "/notifications/abc", nil, idParam("abc"))
	handler.Get(c)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_GetStatus(t *testing.T) {
	handler, mockService := setupHandler(t)

	mockService.EXPECT().GetNotificationStatus(gomock.Any(), int64(3)).Return(model.StatusFailed, nil)

	c, w := newContext(http.MethodGet, "/notifications/3/status", nil, idParam("3"))
	handler.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":3,"status":"failed"}`, w.Body.String())
}

func TestHandler_List(t *testing.T) {
	handler, mockService := setupHandler(t)

	mockService.EXPECT().
		ListNotifications(gomock.Any(), model.Filter{RecipientEmail: "a@b.com", Status: model.StatusSent}, 10, 5).
		Return([]model.Notification{{ID: 1}}, nil)

	c, w := newContext(http.MethodGet, "/notifications?recipient_email=a@b.com&status=sent&skip=10&limit=5", nil, nil)
	handler.List(c)
	assert.Equal(t, http.StatusOK, w.Code)

	for _, q := range []string{"?limit=0", "?limit=1001", "?skip=-1", "?status=lost"} {
		c, w := newContext(http.MethodGet, "/notifications"+q, nil, nil)
		handler.List(c)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, q)
	}
}

func TestHandler_Pending(t *testing.T) {
	handler, mockService := setupHandler(t)

	mockService.EXPECT().ListPending(gomock.Any(), 10).Return([]model.Notification{}, nil)

	c, w := newContext(http.MethodGet, "/notifications/pending", nil, nil)
	handler.Pending(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_Retry(t *testing.T) {
	handler, mockService := setupHandler(t)

	gomock.InOrder(
		mockService.EXPECT().Retry(gomock.Any(), int64(1)).Return(model.Notification{ID: 1, Status: model.StatusPending}, nil),
		mockService.EXPECT().Retry(gomock.Any(), int64(2)).Return(model.Notification{ID: 2, Status: model.StatusSent}, notifsvc.ErrNotRetryable),
		mockService.EXPECT().Retry(gomock.Any(), int64(999999)).Return(model.Notification{}, notification.ErrNotificationNotFound),
		mockService.EXPECT().Retry(gomock.Any(), int64(3)).Return(model.Notification{}, fmt.Errorf("%w: queue full", notifsvc.ErrDispatchUnavailable)),
	)

	c, w := newContext(http.MethodPost, "/notifications/1/retry", nil, idParam("1"))
	handler.Retry(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodPost, "/notifications/2/retry", nil, idParam("2"))
	handler.Retry(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"only failed notifications may be retried"}`, w.Body.String())

	c, w = newContext(http.MethodPost, "/notifications/999999/retry", nil, idParam("999999"))
	handler.Retry(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	c, w = newContext(http.MethodPost, "/notifications/3/retry", nil, idParam("3"))
	handler.Retry(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"dispatch is unavailable, try again later"}`, w.Body.String())
}

func TestHandler_TestEmail(t *testing.T) {
	handler, mockService := setupHandler(t)

	gomock.InOrder(
		mockService.EXPECT().SendTestEmail(gomock.Any(), "a@b.com").Return(nil),
		mockService.EXPECT().SendTestEmail(gomock.Any(), "a@b.com").Return(errors.New("auth failed")),
	)

	c, w := newContext(http.MethodPost, "/notifications/test-email?email=a@b.com", nil, nil)
	handler.TestEmail(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Test email sent successfully to a@b.com"}`, w.Body.String())

	c, w = newContext(http.MethodPost, "/notifications/test-email?email=a@b.com", nil, nil)
	handler.TestEmail(c)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	c, w = newContext(http.MethodPost, "/notifications/test-email", nil, nil)
	handler.TestEmail(c)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mati-tech/microservices1112/internal/api/handlers/material"
	"github.com/mati-tech/microservices1112/internal/api/handlers/notification"
	matmocks "github.com/mati-tech/microservices1112/internal/mocks/api/handlers/material"
	notifmocks "github.com/mati-tech/microservices1112/internal/mocks/api/handlers/notification"
	"github.com/mati-tech/microservices1112/internal/model"
	matrepo "github.com/mati-tech/microservices1112/internal/repository/material"
)

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestNewNotifications_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := notifmocks.NewMocknotificationService(ctrl)

	svc.EXPECT().ListPending(gomock.Any(), 10).Return([]model.Notification{}, nil)
	svc.EXPECT().GetNotificationStatus(gomock.Any(), int64(4)).Return(model.StatusSent, nil)

	r := NewNotifications(notification.NewHandler(svc, validator.New()))

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/notifications/pending").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/notifications/4/status").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/metrics").Code)
}

func TestNewMaterials_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := matmocks.NewMockmaterialService(ctrl)

	svc.EXPECT().GetMaterial(gomock.Any(), int64(999999)).Return(model.Material{}, matrepo.ErrMaterialNotFound)

	r := NewMaterials(material.NewHandler(svc, validator.New()))

	w := serve(r, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"materials-service"}`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/materials/999999").Code)
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodOptions, "/materials").Code)
}

package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fleetops_driver_service/internal/apperrors"
	"fleetops_driver_service/internal/dto"
	"fleetops_driver_service/internal/validation"
)

type MockDriverService struct {
	mock.Mock
}

func (m *MockDriverService) Create(ctx context.Context, in dto.Driver) (dto.Driver, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(dto.Driver), args.Error(1)
}

func (m *MockDriverService) Get(ctx context.Context, id uint) (dto.Driver, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.Driver), args.Error(1)
}

func (m *MockDriverService) List(ctx context.Context) ([]dto.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.Driver), args.Error(1)
}

func (m *MockDriverService) Update(ctx context.Context, id uint, in dto.Driver) (dto.Driver, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(dto.Driver), args.Error(1)
}

func (m *MockDriverService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func setup(svc DriverService) (*gin.Engine, *test.Hook) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	log, hook := test.NewNullLogger()
	dc := NewDriverController(svc, log)

	r := gin.New()
	r.POST("/api/drivers", dc.CreateDriver)
	r.GET("/api/drivers/list", dc.ListDrivers)
	r.GET("/api/drivers/:id", dc.GetDriver)
	r.PUT("/api/drivers/:id", dc.UpdateDriver)
	r.DELETE("/api/drivers/:id", dc.DeleteDriver)
	return r, hook
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validBody = `{"fullName":"Jane Doe","email":"jane@fleetops.test","phone":"555","licenseNumber":"DL123","expiryDate":"2026-01-01"}`

func TestCreateDriver_InternalErrorIsNotEchoed(t *testing.T) {
	svc := new(MockDriverService)
	svc.On("Create", mock.Anything, mock.AnythingOfType("dto.Driver")).
		Return(dto.Driver{}, errors.New("pq: connection refused to 10.0.0.5"))
	r, hook := setup(svc)

	w := serve(r, http.MethodPost, "/api/drivers", validBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	svc.AssertExpectations(t)
}

func TestCreateDriver_ConstraintViolationLoggedAsWarning(t *testing.T) {
	svc := new(MockDriverService)
	svc.On("Create", mock.Anything, mock.Anything).Return(dto.Driver{}, apperrors.ErrConstraintViolation)
	r, hook := setup(svc)

	w := serve(r, http.MethodPost, "/api/drivers", validBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"`+msgAddFailed+`"}`, w.Body.String())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestCreateDriver_InvalidPayloadNeverReachesService(t *testing.T) {
	svc := new(MockDriverService)
	r, _ := setup(svc)

	w := serve(r, http.MethodPost, "/api/drivers", `{"fullName":"Jane Doe"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateDriver_PathIDOverridesBody(t *testing.T) {
	svc := new(MockDriverService)
	svc.On("Update", mock.Anything, uint(5), mock.MatchedBy(func(in dto.Driver) bool {
		return in.DriverID == 5 && in.LicenseNumber == "DL123"
	})).Return(dto.Driver{DriverID: 5, LicenseNumber: "DL123"}, nil)
	r, _ := setup(svc)

	body := strings.Replace(validBody, `{`, `{"driverId":99,`, 1)
	w := serve(r, http.MethodPut, "/api/drivers/5", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"driverId":5`)
	svc.AssertExpectations(t)
}

func TestGetDriver_Errors(t *testing.T) {
	svc := new(MockDriverService)
	svc.On("Get", mock.Anything, uint(1)).Return(dto.Driver{}, apperrors.ErrNotFound)
	svc.On("Get", mock.Anything, uint(2)).Return(dto.Driver{}, errors.New("timeout"))
	r, _ := setup(svc)

	w := serve(r, http.MethodGet, "/api/drivers/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())

	w = serve(r, http.MethodGet, "/api/drivers/2", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "timeout")
}

func TestListDrivers_Error(t *testing.T) {
	svc := new(MockDriverService)
	svc.On("List", mock.Anything).Return(nil, errors.New("db down"))
	r, _ := setup(svc)

	w := serve(r, http.MethodGet, "/api/drivers/list", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestDeleteDriver_Errors(t *testing.T) {
	svc := new(MockDriverService)
	svc.On("Delete", mock.Anything, uint(3)).Return(apperrors.ErrNotFound)
	svc.On("Delete", mock.Anything, uint(4)).Return(errors.New("locked"))
	r, _ := setup(svc)

	w := serve(r, http.MethodDelete, "/api/drivers/3", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Driver not found"}`, w.Body.String())

	w = serve(r, http.MethodDelete, "/api/drivers/4", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, _ := test.NewNullLogger()

	for _, tc := range []struct {
		name string
		err  error
		code int
	}{
		{"up", nil, http.StatusOK},
		{"down", errors.New("dial tcp: refused"), http.StatusServiceUnavailable},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/healthz", NewHealthController(fakePinger{tc.err}, log).Health)
			w := serve(r, http.MethodGet, "/healthz", "")
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

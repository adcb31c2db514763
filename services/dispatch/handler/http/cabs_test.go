package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfleet/cabdispatch/internal/pkg/models"
	"github.com/openfleet/cabdispatch/services/dispatch"
	"github.com/openfleet/cabdispatch/services/dispatch/mocks"
)

func newCabContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterCab(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewCabHandler(uc)

	uc.EXPECT().
		RegisterCab(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.CabRequest) (*models.Cab, error) {
			assert.Equal(t, "Dana", req.DriverName)
			assert.Equal(t, "CAB-001", req.VehicleNo)
			return &models.Cab{
				ID:         uuid.New(),
				DriverName: req.DriverName,
				VehicleNo:  req.VehicleNo,
				Status:     models.CabStatusAvailable,
			}, nil
		})

	body := `{"driver_name":"Dana","vehicle_no":"CAB-001","lat":0,"lon":0.001}`
	c, rec := newCabContext(t, http.MethodPost, "/cabs", body)

	require.NoError(t, h.RegisterCab(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "CAB-001")
}

func TestRegisterCab_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewCabHandler(uc)

	uc.EXPECT().RegisterCab(gomock.Any(), gomock.Any()).Return(nil, dispatch.ErrInvalidInput)

	c, rec := newCabContext(t, http.MethodPost, "/cabs", `{"driver_name":""}`)

	require.NoError(t, h.RegisterCab(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCabs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewCabHandler(uc)

	uc.EXPECT().ListCabs(gomock.Any()).Return([]*models.Cab{
		{ID: uuid.New(), VehicleNo: "CAB-001", Status: models.CabStatusAvailable},
		{ID: uuid.New(), VehicleNo: "CAB-002", Status: models.CabStatusOnTrip},
	}, nil)

	c, rec := newCabContext(t, http.MethodGet, "/cabs", "")

	require.NoError(t, h.ListCabs(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "CAB-002")
}

func TestListAvailableCabs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewCabHandler(uc)

	uc.EXPECT().ListAvailableCabs(gomock.Any()).Return([]*models.Cab{
		{ID: uuid.New(), VehicleNo: "CAB-001", Status: models.CabStatusAvailable},
	}, nil)

	c, rec := newCabContext(t, http.MethodGet, "/cabs/available", "")

	require.NoError(t, h.ListAvailableCabs(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateCabLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewCabHandler(uc)

	cabID := uuid.New()
	uc.EXPECT().
		UpdateCabLocation(gomock.Any(), cabID, gomock.Any()).
		Return(&models.Cab{ID: cabID, Latitude: -6.2, Longitude: 106.8}, nil)

	c, rec := newCabContext(t, http.MethodPut, "/cabs/"+cabID.String()+"/location", `{"lat":-6.2,"lon":106.8}`)
	c.SetParamNames("cabID")
	c.SetParamValues(cabID.String())

	require.NoError(t, h.UpdateCabLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateCabLocation_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewCabHandler(mocks.NewMockDispatchUC(ctrl))

	c, rec := newCabContext(t, http.MethodPut, "/cabs/nope/location", `{"lat":0,"lon":0}`)
	c.SetParamNames("cabID")
	c.SetParamValues("nope")

	require.NoError(t, h.UpdateCabLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCabStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewCabHandler(uc)

	cabID := uuid.New()
	uc.EXPECT().
		UpdateCabStatus(gomock.Any(), cabID, models.CabStatusOffline).
		Return(&models.Cab{ID: cabID, Status: models.CabStatusOffline}, nil)

	c, rec := newCabContext(t, http.MethodPut, "/cabs/"+cabID.String()+"/status", `{"status":"offline"}`)
	c.SetParamNames("cabID")
	c.SetParamValues(cabID.String())

	require.NoError(t, h.UpdateCabStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateCabStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewCabHandler(uc)

	cabID := uuid.New()
	uc.EXPECT().
		UpdateCabStatus(gomock.Any(), cabID, models.CabStatusAvailable).
		Return(nil, dispatch.ErrNotFound)

	c, rec := newCabContext(t, http.MethodPut, "/cabs/"+cabID.String()+"/status", `{"status":"available"}`)
	c.SetParamNames("cabID")
	c.SetParamValues(cabID.String())

	require.NoError(t, h.UpdateCabStatus(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/recording"
	recordingmocks "github.com/vfg2006/kpi-dashboard-api/internal/usecases/recording/mocks"
	"github.com/vfg2006/kpi-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func newRecordsRouter(service recording.Recorder) http.Handler {
	return router.New(
		router.WithRoutes(KpiRecords(service)...),
	)
}

func decodeErrorBody(t *testing.T, res *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	body := map[string]string{}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	return body
}

func TestCreateKpiRecord(t *testing.T) {
	t.Run("Payload válido responde 201 com o registro criado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := recordingmocks.NewMockRecorder(ctrl)
		rt := newRecordsRouter(mockService)

		created := &domain.KpiRecord{
			ID:     1,
			Date:   domain.NewCalendarDate(2024, time.March, 1),
			Team:   "KENYA",
			Target: 100,
		}
		mockService.EXPECT().CreateRecord(gomock.Any()).Return(created, nil)

		payload := `{"date":"2024-03-01","team":"KENYA","target":"100"}`
		req := httptest.NewRequest(http.MethodPost, "/api/kpi", bytes.NewBufferString(payload))
		res := httptest.NewRecorder()

		rt.ServeHTTP(res, req)

		assert.Equal(t, http.StatusCreated, res.Code)

		var record domain.KpiRecord
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &record))
		assert.Equal(t, 1, record.ID)
		assert.Equal(t, "KENYA", record.Team)
	})

	t.Run("Erro de validação responde 400 com message e field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := recordingmocks.NewMockRecorder(ctrl)
		rt := newRecordsRouter(mockService)

		mockService.EXPECT().
			CreateRecord(gomock.Any()).
			Return(nil, &domain.ValidationError{
				Field:   "newDepositShipOk",
				Message: "newDepositShipOk is required",
			})

		payload := `{"date":"2024-03-01","team":"KENYA"}`
		req := httptest.NewRequest(http.MethodPost, "/api/kpi", bytes.NewBufferString(payload))
		res := httptest.NewRecorder()

		rt.ServeHTTP(res, req)

		assert.Equal(t, http.StatusBadRequest, res.Code)

		body := decodeErrorBody(t, res)
		assert.Equal(t, "newDepositShipOk is required", body["message"])
		assert.Equal(t, "newDepositShipOk", body["field"])
	})

	t.Run("Corpo que não é JSON responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := recordingmocks.NewMockRecorder(ctrl)
		rt := newRecordsRouter(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/kpi", bytes.NewBufferString("not-json"))
		res := httptest.NewRecorder()

		rt.ServeHTTP(res, req)

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}

func TestUpdateKpiRecord(t *testing.T) {
	t.Run("Id inexistente responde 404 somente com message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := recordingmocks.NewMockRecorder(ctrl)
		rt := newRecordsRouter(mockService)

		mockService.EXPECT().
			UpdateRecord(99, gomock.Any()).
			Return(nil, recording.ErrRecordNotFound)

		payload := `{"target":"150"}`
		req := httptest.NewRequest(http.MethodPut, "/api/kpi/99", bytes.NewBufferString(payload))
		res := httptest.NewRecorder()

		rt.ServeHTTP(res, req)

		assert.Equal(t, http.StatusNotFound, res.Code)

		body := decodeErrorBody(t, res)
		assert.Equal(t, "KPI record not found", body["message"])
		assert.NotContains(t, body, "field")
	})

	t.Run("Atualização parcial responde 200 com o registro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := recordingmocks.NewMockRecorder(ctrl)
		rt := newRecordsRouter(mockService)

		updated := &domain.KpiRecord{ID: 7, Team: "KENYA", Target: 150}
		mockService.EXPECT().UpdateRecord(7, gomock.Any()).Return(updated, nil)

		payload := `{"target":150}`
		req := httptest.NewRequest(http.MethodPut, "/api/kpi/7", bytes.NewBufferString(payload))
		res := httptest.NewRecorder()

		rt.ServeHTTP(res, req)

		assert.Equal(t, http.StatusOK, res.Code)

		var record domain.KpiRecord
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &record))
		assert.Equal(t, 150.0, record.Target)
	})

	t.Run("Id não numérico responde 400 sem chegar ao serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := recordingmocks.NewMockRecorder(ctrl)
		rt := newRecordsRouter(mockService)

		req := httptest.NewRequest(http.MethodPut, "/api/kpi/abc", bytes.NewBufferString(`{}`))
		res := httptest.NewRecorder()

		rt.ServeHTTP(res, req)

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}

func TestDeleteKpiRecord(t *testing.T) {
	t.Run("Remoção existente responde 204 sem corpo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := recordingmocks.NewMockRecorder(ctrl)
		rt := newRecordsRouter(mockService)

		mockService.EXPECT().DeleteRecord(5).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/kpi/5", nil)
		res := httptest.NewRecorder()

		rt.ServeHTTP(res, req)

		assert.Equal(t, http.StatusNoContent, res.Code)
		assert.Empty(t, res.Body.Bytes())
	})

	t.Run("Id inexistente responde 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := recordingmocks.NewMockRecorder(ctrl)
		rt := newRecordsRouter(mockService)

		mockService.EXPECT().DeleteRecord(5).Return(recording.ErrRecordNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/kpi/5", nil)
		res := httptest.NewRecorder()

		rt.ServeHTTP(res, req)

		assert.Equal(t, http.StatusNotFound, res.Code)

		body := decodeErrorBody(t, res)
		assert.Equal(t, "KPI record not found", body["message"])
	})
}

func TestListKpiRecords(t *testing.T) {
	t.Run("Filtros da query string chegam ao serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := recordingmocks.NewMockRecorder(ctrl)
		rt := newRecordsRouter(mockService)

		start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
		expectedFilters := domain.KpiFilters{StartDate: &start, EndDate: &end, Team: "KENYA"}

		mockService.EXPECT().
			ListRecords(expectedFilters).
			Return([]*domain.KpiRecord{{ID: 2}, {ID: 1}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/kpi?startDate=2024-03-01&endDate=2024-03-31&team=KENYA", nil)
		res := httptest.NewRecorder()

		rt.ServeHTTP(res, req)

		assert.Equal(t, http.StatusOK, res.Code)

		var records []*domain.KpiRecord
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &records))
		assert.Len(t, records, 2)
	})

	t.Run("Data de filtro inválida responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := recordingmocks.NewMockRecorder(ctrl)
		rt := newRecordsRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/kpi?startDate=15-03-2024", nil)
		res := httptest.NewRecorder()

		rt.ServeHTTP(res, req)

		assert.Equal(t, http.StatusBadRequest, res.Code)

		body := decodeErrorBody(t, res)
		assert.Equal(t, "startDate", body["field"])
	})
}

func TestListKpiTeams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := recordingmocks.NewMockRecorder(ctrl)
	rt := newRecordsRouter(mockService)

	mockService.EXPECT().ListTeams().Return([]string{"CYPRUS", "KENYA"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/kpi/teams", nil)
	res := httptest.NewRecorder()

	rt.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)

	var teams []string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &teams))
	assert.Equal(t, []string{"CYPRUS", "KENYA"}, teams)
}

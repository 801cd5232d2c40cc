package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/validation"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeControl — подмена управления пайплайном для тестов обработчиков
type fakeControl struct {
	runErr      error
	results     []validation.CheckResult
	validateErr error
	runs        []models.PipelineRunLog
	statsErr    error
	statsDays   int
}

func (f *fakeControl) ExecutePipeline() error { return f.runErr }

func (f *fakeControl) ExecuteValidation() ([]validation.CheckResult, error) {
	return f.results, f.validateErr
}

func (f *fakeControl) RunStats(days int) ([]models.PipelineRunLog, error) {
	f.statsDays = days
	return f.runs, f.statsErr
}

func newTestRouter(control PipelineControl) *mux.Router {
	router := mux.NewRouter()
	SetupRoutes(router, control)
	return router
}

func TestRunHandlerPublished(t *testing.T) {
	router := newTestRouter(&fakeControl{})

	req := httptest.NewRequest(http.MethodPost, "/api/pipeline/run", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "published", body["status"])
}

func TestRunHandlerConflictWhenInProgress(t *testing.T) {
	router := newTestRouter(&fakeControl{runErr: ErrRunInProgress})

	req := httptest.NewRequest(http.MethodPost, "/api/pipeline/run", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Повторный запуск при выполняющемся батче отклоняется конфликтом
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRunHandlerInternalError(t *testing.T) {
	router := newTestRouter(&fakeControl{runErr: errors.New("ошибка подключения")})

	req := httptest.NewRequest(http.MethodPost, "/api/pipeline/run", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestValidateHandlerReportsBlocking(t *testing.T) {
	control := &fakeControl{
		results: []validation.CheckResult{
			{Name: "fact_sales_referential_integrity", Layer: validation.LayerModeled,
				Blocking: true, OffendingKeys: []string{"SO99999[1]"}},
		},
	}
	router := newTestRouter(control)

	req := httptest.NewRequest(http.MethodPost, "/api/pipeline/validate", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		BlockingFailures bool                     `json:"blocking_failures"`
		Results          []validation.CheckResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.BlockingFailures)
	require.Len(t, body.Results, 1)
	assert.Equal(t, []string{"SO99999[1]"}, body.Results[0].OffendingKeys)
}

func TestStatusHandlerDefaultPeriod(t *testing.T) {
	control := &fakeControl{}
	router := newTestRouter(control)

	req := httptest.NewRequest(http.MethodGet, "/api/pipeline/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, control.statsDays, "без параметра берется период по умолчанию")
}

func TestStatusHandlerCustomPeriod(t *testing.T) {
	control := &fakeControl{}
	router := newTestRouter(control)

	req := httptest.NewRequest(http.MethodGet, "/api/pipeline/status?days=30", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 30, control.statsDays)
}

func TestStatusHandlerRejectsBadPeriod(t *testing.T) {
	router := newTestRouter(&fakeControl{})

	req := httptest.NewRequest(http.MethodGet, "/api/pipeline/status?days=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

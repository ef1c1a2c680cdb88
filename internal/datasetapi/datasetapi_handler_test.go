package datasetapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-hrgen/internal/datasetapi"
	"go-hrgen/internal/datasetapi/mock"
	"go-hrgen/internal/shared/apperror"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

func setupRouter(service datasetapi.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	api := r.Group("/api/v1")
	datasetapi.RegisterRoutes(api, datasetapi.NewHandler(service))
	return r
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/datasets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Generate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockService(ctrl)
	svc.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(datasetapi.GenerateDatasetResponse{RunID: "run-1"}, nil)

	w := postJSON(setupRouter(svc), `{
		"n_employees": 10,
		"start_date": "2020-01-01",
		"end_date": "2024-12-31",
		"seed": 42,
		"include_performance": true,
		"include_compensation": true
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
	assert.Nil(t, env.Error)

	var resp datasetapi.GenerateDatasetResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "run-1", resp.RunID)
}

func TestHandler_Generate_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockService(ctrl)

	w := postJSON(setupRouter(svc), `{
		"n_employees": 0,
		"start_date": "2020-01-01",
		"end_date": "2024-12-31"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.NotNil(t, env.Error)
}

func TestHandler_Generate_BadDateFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockService(ctrl)

	w := postJSON(setupRouter(svc), `{
		"n_employees": 10,
		"start_date": "01/01/2020",
		"end_date": "2024-12-31"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Generate_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockService(ctrl)
	svc.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(datasetapi.GenerateDatasetResponse{}, apperror.Alignment("no organization for job family %q", "Engineering"))

	w := postJSON(setupRouter(svc), `{
		"n_employees": 10,
		"start_date": "2020-01-01",
		"end_date": "2024-12-31"
	}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, apperror.CodeAlignment, env.Error.Code)
}

func TestHandler_Generate_RequestPassedThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var got datasetapi.GenerateDatasetRequest
	svc := mock.NewMockService(ctrl)
	svc.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req datasetapi.GenerateDatasetRequest) (datasetapi.GenerateDatasetResponse, error) {
			got = req
			return datasetapi.GenerateDatasetResponse{RunID: "run-2"}, nil
		})

	w := postJSON(setupRouter(svc), `{
		"n_employees": 25,
		"start_date": "2018-06-01",
		"end_date": "2023-06-01",
		"seed": 7,
		"include_compensation": true
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 25, got.NEmployees)
	assert.Equal(t, "2018-06-01", got.StartDate)
	assert.Equal(t, "2023-06-01", got.EndDate)
	assert.NotNil(t, got.Seed)
	assert.Equal(t, int64(7), *got.Seed)
	assert.True(t, got.IncludeCompensation)
	assert.False(t, got.IncludePerformance)
}

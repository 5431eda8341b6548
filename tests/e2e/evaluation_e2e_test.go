//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/uxmetrics/eval-server/internal/httpapi"
	"github.com/uxmetrics/eval-server/internal/kano"
	"github.com/uxmetrics/eval-server/internal/repository"
	"github.com/uxmetrics/eval-server/internal/service"
	"github.com/uxmetrics/eval-server/internal/sus"
	"github.com/uxmetrics/eval-server/tests/e2e/mocks"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupServer(t *testing.T) *httptest.Server {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// a single connection keeps the in-memory database alive across requests
	db.SetMaxOpenConns(1)

	repo := repository.NewEvaluationRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))

	logger := zap.NewNop()
	svc := service.NewEvaluationService(repo, logger)
	handlers := httpapi.NewHandlers(svc, &mocks.InMemoryCache{}, logger, 5*time.Minute)

	server := httptest.NewServer(handlers.Router())
	t.Cleanup(server.Close)
	return server
}

func evaluatePayload(projectName string) []byte {
	kanoResponses := map[string]map[string]int{}
	for i, q := range kano.DefaultQuestions {
		functional := 1 + i%2
		kanoResponses[q.ID] = map[string]int{"functional": functional, "dysfunctional": 5}
	}
	susResponses := map[string]int{}
	for i, q := range sus.Questions {
		if i%2 == 0 {
			susResponses[q.ID] = 5
		} else {
			susResponses[q.ID] = 1
		}
	}
	body, _ := json.Marshal(map[string]any{
		"project_info": map[string]string{
			"name":    projectName,
			"version": "1.0",
			"team":    "UX Research",
		},
		"kano_responses": kanoResponses,
		"sus_responses":  susResponses,
	})
	return body
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, method, url string, body []byte) (*http.Response, envelope) {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if resp.Header.Get("Content-Type") == "application/json" {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

func TestE2E_EvaluateAndFetch(t *testing.T) {
	server := setupServer(t)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/evaluate", evaluatePayload("Voice Assistant"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, env.Success)

	var created service.Evaluation
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)

	// alternating 5/1 responses on alternating polarity give a perfect score
	assert.Equal(t, 100.0, created.SUSEvaluation.Score)
	assert.Equal(t, "A", string(created.SUSEvaluation.Grade))
	assert.NotEmpty(t, created.KanoEvaluation.Summary.CategoryCounts)
	assert.Greater(t, created.OverallAssessment.OverallScore, 0.0)

	resp, env = doJSON(t, http.MethodGet, server.URL+"/api/evaluations/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched service.Evaluation
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Voice Assistant", fetched.ProjectInfo.Name)
	assert.Equal(t, created.SUSEvaluation.Score, fetched.SUSEvaluation.Score)
}

func TestE2E_ListAndStats(t *testing.T) {
	server := setupServer(t)

	for i := 0; i < 3; i++ {
		resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/evaluate", evaluatePayload(fmt.Sprintf("Project %d", i)))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, env := doJSON(t, http.MethodGet, server.URL+"/api/evaluations?limit=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list struct {
		Evaluations []service.EvaluationSummary `json:"evaluations"`
		Count       int                         `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 2, list.Count)

	resp, env = doJSON(t, http.MethodGet, server.URL+"/api/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats service.Stats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(3), stats.TotalEvaluations)
	assert.Equal(t, 100.0, stats.AverageSUSScore)
	assert.Equal(t, int64(3), stats.GradeDistribution["A"])
}

func TestE2E_ReportDownload(t *testing.T) {
	server := setupServer(t)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/evaluate", evaluatePayload("Report Target"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created service.Evaluation
	require.NoError(t, json.Unmarshal(env.Data, &created))

	reportResp, err := http.Get(server.URL + "/api/evaluations/" + created.ID + "/report")
	require.NoError(t, err)
	defer reportResp.Body.Close()

	require.Equal(t, http.StatusOK, reportResp.StatusCode)
	assert.Equal(t, "application/pdf", reportResp.Header.Get("Content-Type"))
	assert.Contains(t, reportResp.Header.Get("Content-Disposition"), "Report_Target_1.0_")

	head := make([]byte, 5)
	_, err = reportResp.Body.Read(head)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(head))
}

func TestE2E_DeleteEvaluation(t *testing.T) {
	server := setupServer(t)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/evaluate", evaluatePayload("Short Lived"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created service.Evaluation
	require.NoError(t, json.Unmarshal(env.Data, &created))

	resp, env = doJSON(t, http.MethodDelete, server.URL+"/api/evaluations/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	resp, _ = doJSON(t, http.MethodGet, server.URL+"/api/evaluations/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, server.URL+"/api/evaluations/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestE2E_ValidationErrors(t *testing.T) {
	server := setupServer(t)

	t.Run("missing kano responses", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{
			"project_info":  map[string]string{"name": "Broken"},
			"sus_responses": map[string]int{"q1": 3},
		})
		resp, env := doJSON(t, http.MethodPost, server.URL+"/api/evaluate", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, env.Success)
	})

	t.Run("incomplete sus responses", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{
			"project_info":   map[string]string{"name": "Broken"},
			"kano_responses": map[string]any{"response_accuracy": map[string]int{"functional": 1, "dysfunctional": 5}},
			"sus_responses":  map[string]int{"q1": 3},
		})
		resp, env := doJSON(t, http.MethodPost, server.URL+"/api/evaluate", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, env.Success)
	})

	t.Run("unknown evaluation id", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, server.URL+"/api/evaluations/deadbeef", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-match/internal/matching"
)

func TestHandleGetWeights_DefaultsWhenUnseeded(t *testing.T) {
	s := newTestServer(newFakeDBClient())

	req := httptest.NewRequest(http.MethodGet, "/admin/weights", nil)
	w := httptest.NewRecorder()
	s.handleGetWeights(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var weights map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &weights))
	assert.Equal(t, 1.5, weights["skill_overlap"])
	assert.Equal(t, 1.0, weights["budget_fit"])
	assert.Equal(t, 1.0, weights["availability_fit"])
	assert.Equal(t, 0.5, weights["remote_fit"])
}

func putWeights(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/admin/weights", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	s.handleUpdateWeights(w, req)
	return w
}

func TestHandleUpdateWeights_PartialUpdate(t *testing.T) {
	client := newFakeDBClient()
	s := newTestServer(client)

	w := putWeights(t, s, `{"skill_overlap": 2.5}`)

	require.Equal(t, http.StatusOK, w.Code)

	var updated map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 2.5, updated["skill_overlap"])
	assert.Equal(t, 1.0, updated["budget_fit"])

	// Later scoring reads see the stored update.
	assert.Equal(t, 2.5, client.weights[matching.FactorSkillOverlap])
}

func TestHandleUpdateWeights_RejectsNegative(t *testing.T) {
	client := newFakeDBClient()
	client.weights = map[string]float64{matching.FactorBudgetFit: 1.25}
	s := newTestServer(client)

	w := putWeights(t, s, `{"budget_fit": -3}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// Prior configuration remains active.
	assert.Equal(t, map[string]float64{matching.FactorBudgetFit: 1.25}, client.weights)
}

func TestHandleUpdateWeights_EmptyBody(t *testing.T) {
	s := newTestServer(newFakeDBClient())

	w := putWeights(t, s, `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUpdateWeights_InvalidJSON(t *testing.T) {
	s := newTestServer(newFakeDBClient())

	w := putWeights(t, s, `{"skill_overlap": "high"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUpdateWeights_IgnoresUnknownKeys(t *testing.T) {
	client := newFakeDBClient()
	s := newTestServer(client)

	w := putWeights(t, s, `{"skill_overlap": 2.0, "github_activity": 9.9}`)

	require.Equal(t, http.StatusOK, w.Code)

	var updated map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.NotContains(t, updated, "github_activity")
	assert.Equal(t, 2.0, updated["skill_overlap"])
}

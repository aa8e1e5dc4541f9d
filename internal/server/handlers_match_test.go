package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	bodyBytes, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(bodyBytes))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestHandleScoreMatch_Scenario(t *testing.T) {
	client := newFakeDBClient()
	engineerID, jobID := seedScenario(client)
	s := newTestServer(client)

	w := postJSON(t, s.handleScoreMatch, "/matches/score", map[string]string{
		"candidate_id": engineerID.String(),
		"target_id":    jobID.String(),
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp ScoreMatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 68, resp.Score)
	assert.InDelta(t, 0.4, resp.Breakdown.SkillOverlap, 1e-9)
	assert.InDelta(t, 0.875, resp.Breakdown.BudgetFit, 1e-9)
	assert.InDelta(t, 0.75, resp.Breakdown.AvailabilityFit, 1e-9)
	assert.InDelta(t, 1.0, resp.Breakdown.RemoteFit, 1e-9)
}

func TestHandleScoreMatch_MissingFields(t *testing.T) {
	s := newTestServer(newFakeDBClient())

	w := postJSON(t, s.handleScoreMatch, "/matches/score", map[string]string{
		"candidate_id": uuid.New().String(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleScoreMatch_UnknownEngineer(t *testing.T) {
	client := newFakeDBClient()
	_, jobID := seedScenario(client)
	s := newTestServer(client)

	w := postJSON(t, s.handleScoreMatch, "/matches/score", map[string]string{
		"candidate_id": uuid.New().String(),
		"target_id":    jobID.String(),
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleScoreMatch_InvalidBody(t *testing.T) {
	s := newTestServer(newFakeDBClient())

	req := httptest.NewRequest(http.MethodPost, "/matches/score", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	s.handleScoreMatch(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRecommendations_RankedResponse(t *testing.T) {
	client := newFakeDBClient()
	engineerID, _ := seedScenario(client)
	s := newTestServer(client)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/engineers/%s/recommendations?limit=5", engineerID), nil)
	req.SetPathValue("id", engineerID.String())
	w := httptest.NewRecorder()
	s.handleRecommendations(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		EngineerID      string              `json:"engineer_id"`
		Recommendations []JobRecommendation `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, engineerID.String(), resp.EngineerID)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, 68, resp.Recommendations[0].Result.Score)
}

func TestHandleRecommendations_InvalidLimit(t *testing.T) {
	client := newFakeDBClient()
	engineerID, _ := seedScenario(client)
	s := newTestServer(client)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/engineers/%s/recommendations?limit=zero", engineerID), nil)
	req.SetPathValue("id", engineerID.String())
	w := httptest.NewRecorder()
	s.handleRecommendations(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

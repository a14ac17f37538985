package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/playforge/rewards-backend/internal/config"
	"github.com/playforge/rewards-backend/internal/middleware"
	"github.com/playforge/rewards-backend/internal/models"
	"github.com/playforge/rewards-backend/internal/services"
	"github.com/playforge/rewards-backend/pkg/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRewardService records calls and returns canned results
type stubRewardService struct {
	adErr      error
	gameErr    error
	total      int64
	adCalls    int
	gameCalls  int
	lastPoints int64
	lastLevel  *int64
}

var _ services.RewardService = (*stubRewardService)(nil)

func (s *stubRewardService) ApplyAdReward(ctx context.Context, userID string) (int64, int64, error) {
	s.adCalls++
	if s.adErr != nil {
		return 0, 0, s.adErr
	}
	return 100, s.total, nil
}

func (s *stubRewardService) AwardGamePoints(ctx context.Context, userID string, points int64, level *int64, totalScore *float64) (int64, error) {
	s.gameCalls++
	s.lastPoints = points
	s.lastLevel = level
	if s.gameErr != nil {
		return 0, s.gameErr
	}
	return s.total, nil
}

func (s *stubRewardService) GetBalance(ctx context.Context, userID string) (*models.Balance, error) {
	return &models.Balance{UserID: userID, Points: s.total}, nil
}

func (s *stubRewardService) GetActivities(ctx context.Context, userID string) ([]*models.Activity, error) {
	return []*models.Activity{}, nil
}

var testTokens = tokens.NewService("test-secret", time.Hour)

func newTestRouter(svc services.RewardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRewardHandler(svc, config.RewardsConfig{AdRewardPoints: 100, MaxGamePoints: 1000, MaxLevel: 500})

	router := gin.New()
	router.Use(middleware.TokenAuthMiddleware(testTokens))
	router.POST("/applyAdReward", h.ApplyAdReward)
	router.POST("/awardGamePoints", h.AwardGamePoints)
	router.GET("/api/v1/players/:id/balance", h.GetBalance)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func playerToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := testTokens.Issue(userID)
	require.NoError(t, err)
	return token
}

func TestApplyAdRewardMissingToken(t *testing.T) {
	router := newTestRouter(&stubRewardService{})
	w, body := doRequest(t, router, "POST", "/applyAdReward", "", `{"userId":"u1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, body["ok"])
}

func TestApplyAdRewardBadToken(t *testing.T) {
	router := newTestRouter(&stubRewardService{})
	w, _ := doRequest(t, router, "POST", "/applyAdReward", "not-a-token", `{"userId":"u1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApplyAdRewardUserMismatch(t *testing.T) {
	svc := &stubRewardService{}
	router := newTestRouter(svc)
	w, body := doRequest(t, router, "POST", "/applyAdReward", playerToken(t, "someone-else"), `{"userId":"u1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "userId mismatch", body["error"])
	assert.Equal(t, 0, svc.adCalls)
}

func TestApplyAdRewardSuccess(t *testing.T) {
	svc := &stubRewardService{total: 150}
	router := newTestRouter(svc)
	w, body := doRequest(t, router, "POST", "/applyAdReward", playerToken(t, "u1"), `{"userId":"u1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(100), body["added"])
	assert.Equal(t, float64(150), body["points"])
}

func TestApplyAdRewardAlreadyClaimed(t *testing.T) {
	svc := &stubRewardService{adErr: services.ErrAlreadyClaimed}
	router := newTestRouter(svc)
	w, body := doRequest(t, router, "POST", "/applyAdReward", playerToken(t, "u1"), `{"userId":"u1"}`)
	// Expected policy outcome: success status, ok:false
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Already claimed today", body["error"])
}

func TestApplyAdRewardServerError(t *testing.T) {
	svc := &stubRewardService{adErr: context.DeadlineExceeded}
	router := newTestRouter(svc)
	w, body := doRequest(t, router, "POST", "/applyAdReward", playerToken(t, "u1"), `{"userId":"u1"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "server_error", body["error"])
}

func TestAwardGamePointsSuccess(t *testing.T) {
	svc := &stubRewardService{total: 50}
	router := newTestRouter(svc)
	w, body := doRequest(t, router, "POST", "/awardGamePoints", playerToken(t, "u1"),
		`{"userId":"u1","points":50,"level":3,"totalScore":900.5}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(50), body["added"])
	assert.Equal(t, float64(50), body["points"])
	require.NotNil(t, svc.lastLevel)
	assert.Equal(t, int64(3), *svc.lastLevel)
}

func TestAwardGamePointsInvalidPoints(t *testing.T) {
	cases := []string{
		`{"userId":"u1","points":0}`,
		`{"userId":"u1","points":-5}`,
		`{"userId":"u1","points":1001}`,
		`{"userId":"u1","points":50.5}`,
	}
	for _, payload := range cases {
		svc := &stubRewardService{}
		router := newTestRouter(svc)
		w, body := doRequest(t, router, "POST", "/awardGamePoints", playerToken(t, "u1"), payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, payload)
		assert.Equal(t, "invalid points", body["error"], payload)
		assert.Equal(t, 0, svc.gameCalls, payload)
	}
}

func TestAwardGamePointsInvalidLevel(t *testing.T) {
	cases := []string{
		`{"userId":"u1","points":50,"level":-1}`,
		`{"userId":"u1","points":50,"level":501}`,
		`{"userId":"u1","points":50,"level":2.5}`,
	}
	for _, payload := range cases {
		svc := &stubRewardService{}
		router := newTestRouter(svc)
		w, body := doRequest(t, router, "POST", "/awardGamePoints", playerToken(t, "u1"), payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, payload)
		assert.Equal(t, "invalid level", body["error"], payload)
		assert.Equal(t, 0, svc.gameCalls, payload)
	}
}

func TestAwardGamePointsBoundaryValues(t *testing.T) {
	svc := &stubRewardService{total: 1000}
	router := newTestRouter(svc)

	w, _ := doRequest(t, router, "POST", "/awardGamePoints", playerToken(t, "u1"),
		`{"userId":"u1","points":1000,"level":500}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(t, router, "POST", "/awardGamePoints", playerToken(t, "u1"),
		`{"userId":"u1","points":1,"level":0}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAwardGamePointsUserMismatch(t *testing.T) {
	svc := &stubRewardService{}
	router := newTestRouter(svc)
	w, body := doRequest(t, router, "POST", "/awardGamePoints", playerToken(t, "other"),
		`{"userId":"u1","points":50}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "userId mismatch", body["error"])
	assert.Equal(t, 0, svc.gameCalls)
}

func TestGetBalanceOwnership(t *testing.T) {
	svc := &stubRewardService{total: 400}
	router := newTestRouter(svc)

	w, body := doRequest(t, router, "GET", "/api/v1/players/u1/balance", playerToken(t, "u1"), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(400), body["points"])

	w, _ = doRequest(t, router, "GET", "/api/v1/players/u1/balance", playerToken(t, "other"), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

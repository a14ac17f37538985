package handlers

import (
	"errors"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playforge/rewards-backend/internal/config"
	"github.com/playforge/rewards-backend/internal/middleware"
	"github.com/playforge/rewards-backend/internal/models"
	"github.com/playforge/rewards-backend/internal/services"
)

// RewardHandler handles the reward HTTP endpoints
type RewardHandler struct {
	rewardService services.RewardService
	cfg           config.RewardsConfig
}

// NewRewardHandler creates a new RewardHandler
func NewRewardHandler(rewardService services.RewardService, cfg config.RewardsConfig) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
		cfg:           cfg,
	}
}

// ApplyAdReward handles POST /applyAdReward
func (h *RewardHandler) ApplyAdReward(c *gin.Context) {
	var req models.AdRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.RewardResponse{OK: false, Error: "invalid request body"})
		return
	}

	// The verified subject must own the balance it is claiming for
	subject := c.GetString(middleware.SubjectKey)
	if subject != req.UserID {
		c.JSON(http.StatusBadRequest, models.RewardResponse{OK: false, Error: "userId mismatch"})
		return
	}

	added, total, err := h.rewardService.ApplyAdReward(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyClaimed) {
			// Expected outcome, not an error: success status with ok:false
			c.JSON(http.StatusOK, models.RewardResponse{OK: false, Error: "Already claimed today"})
			return
		}
		log.Printf("[ERROR] ApplyAdReward: award failed for %s: %v", req.UserID, err)
		c.JSON(http.StatusInternalServerError, models.RewardResponse{OK: false, Error: "server_error"})
		return
	}

	c.JSON(http.StatusOK, models.RewardResponse{OK: true, Added: added, Points: total})
}

// AwardGamePoints handles POST /awardGamePoints
func (h *RewardHandler) AwardGamePoints(c *gin.Context) {
	var req models.GamePointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.RewardResponse{OK: false, Error: "invalid request body"})
		return
	}

	subject := c.GetString(middleware.SubjectKey)
	if subject != req.UserID {
		c.JSON(http.StatusBadRequest, models.RewardResponse{OK: false, Error: "userId mismatch"})
		return
	}

	// Range checks run before any transaction is opened: invalid input never
	// reaches the store.
	points, ok := asInt(req.Points)
	if !ok || points <= 0 || points > h.cfg.MaxGamePoints {
		c.JSON(http.StatusBadRequest, models.RewardResponse{OK: false, Error: "invalid points"})
		return
	}

	var level *int64
	if req.Level != nil {
		l, ok := asInt(*req.Level)
		if !ok || l < 0 || l > h.cfg.MaxLevel {
			c.JSON(http.StatusBadRequest, models.RewardResponse{OK: false, Error: "invalid level"})
			return
		}
		level = &l
	}

	total, err := h.rewardService.AwardGamePoints(c.Request.Context(), req.UserID, points, level, req.TotalScore)
	if err != nil {
		log.Printf("[ERROR] AwardGamePoints: award failed for %s: %v", req.UserID, err)
		c.JSON(http.StatusInternalServerError, models.RewardResponse{OK: false, Error: "server_error"})
		return
	}

	c.JSON(http.StatusOK, models.RewardResponse{OK: true, Added: points, Points: total})
}

// GetBalance handles GET /api/v1/players/:id/balance
func (h *RewardHandler) GetBalance(c *gin.Context) {
	userID := c.Param("id")
	if c.GetString(middleware.SubjectKey) != userID {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "userId mismatch"})
		return
	}

	balance, err := h.rewardService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] GetBalance: lookup failed for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, balance)
}

// GetActivities handles GET /api/v1/players/:id/activities
func (h *RewardHandler) GetActivities(c *gin.Context) {
	userID := c.Param("id")
	if c.GetString(middleware.SubjectKey) != userID {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "userId mismatch"})
		return
	}

	activities, err := h.rewardService.GetActivities(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] GetActivities: lookup failed for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, activities)
}

// asInt reports whether f is an integral JSON number and returns it as int64.
func asInt(f float64) (int64, bool) {
	if math.Trunc(f) != f || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return int64(f), true
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"eggbreak/internal/game"
)

type breakEggRequest struct {
	EggID  int `json:"eggId"`
	LinkID int `json:"linkId"`
}

func (s *Server) GetGameState(c *gin.Context) {
	linkID := 0
	if v := c.Query("linkId"); v != "" {
		linkID, _ = strconv.Atoi(v)
	}
	c.JSON(http.StatusOK, s.Store.GameState(linkID))
}

func (s *Server) BreakEgg(c *gin.Context) {
	var req breakEggRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.EggID < 1 || req.EggID > s.Store.TotalEggs() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid egg id"})
		return
	}

	result, outcome, err := s.Store.BreakEgg(req.EggID, req.LinkID)
	if err != nil {
		c.JSON(breakErrStatus(err), gin.H{"error": err.Error()})
		return
	}

	breaksTotal.WithLabelValues(outcome.String()).Inc()
	if req.LinkID > 0 {
		linksConsumedTotal.Inc()
	}
	s.recordBreakEvent(req.EggID, req.LinkID, outcome)
	s.broadcastState()
	c.JSON(http.StatusOK, result)
}

// The original frontend relied on the generic failure status for business
// rule violations; only malformed input gets a 400.
func breakErrStatus(err error) int {
	if game.IsValidation(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) ClaimRewards(c *gin.Context) {
	result, err := s.Store.ClaimRewards()
	if err != nil {
		if errors.Is(err, game.ErrNoRewards) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to claim rewards"})
		return
	}
	claimsTotal.Inc()
	s.broadcastState()
	c.JSON(http.StatusOK, result)
}

func (s *Server) ResetGame(c *gin.Context) {
	s.Store.ResetGame()
	resetsTotal.Inc()
	s.broadcastState()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// recordBreakEvent appends the attempt to a Redis stream for offline
// analysis when the stream is enabled. Best effort only.
func (s *Server) recordBreakEvent(eggID, linkID int, outcome game.Outcome) {
	if !s.Cfg.BreakStreamEnabled || s.Redis == nil {
		return
	}
	ctx := context.Background()
	_ = s.Redis.XAdd(ctx, &redis.XAddArgs{
		Stream: breakStreamKey(),
		Values: map[string]interface{}{
			"egg_id":  eggID,
			"link_id": linkID,
			"outcome": outcome.String(),
			"ts":      time.Now().UnixMilli(),
		},
	}).Err()
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eggbreak/internal/game"
	"eggbreak/internal/models"
)

type updateEggRequest struct {
	EggID       int           `json:"eggId"`
	Reward      models.Reward `json:"reward"`
	WinningRate int           `json:"winningRate"`
}

type setEggBrokenRequest struct {
	EggID  int   `json:"eggId"`
	Broken *bool `json:"broken"`
}

type bulkWinRateRequest struct {
	WinningRate int `json:"winningRate"`
}

type bulkRewardRequest struct {
	Reward models.Reward `json:"reward"`
}

func (s *Server) GetAllEggs(c *gin.Context) {
	c.JSON(http.StatusOK, s.Store.AllEggs())
}

func (s *Server) UpdateEgg(c *gin.Context) {
	var req updateEggRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.EggID < 1 || req.EggID > s.Store.TotalEggs() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid egg id"})
		return
	}
	egg, err := s.Store.UpdateEgg(req.EggID, req.Reward, req.WinningRate)
	if err != nil {
		c.JSON(adminErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, egg)
}

func (s *Server) SetEggBroken(c *gin.Context) {
	var req setEggBrokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Broken == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.EggID < 1 || req.EggID > s.Store.TotalEggs() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid egg id"})
		return
	}
	egg, err := s.Store.SetEggBroken(req.EggID, *req.Broken)
	if err != nil {
		c.JSON(adminErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	s.broadcastState()
	c.JSON(http.StatusOK, egg)
}

func (s *Server) BulkUpdateWinRates(c *gin.Context) {
	var req bulkWinRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	eggs, err := s.Store.BulkSetWinRate(req.WinningRate)
	if err != nil {
		c.JSON(adminErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, eggs)
}

func (s *Server) BulkUpdateRewards(c *gin.Context) {
	var req bulkRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	eggs, err := s.Store.BulkSetReward(req.Reward)
	if err != nil {
		c.JSON(adminErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, eggs)
}

func (s *Server) GetGlobalWinRate(c *gin.Context) {
	c.JSON(http.StatusOK, s.Store.WinRateConfig())
}

func (s *Server) UpdateGlobalWinRate(c *gin.Context) {
	var patch models.GlobalWinRatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	cfg, err := s.Store.UpdateWinRateConfig(patch)
	if err != nil {
		c.JSON(adminErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func adminErrStatus(err error) int {
	if game.IsValidation(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eggbreak/internal/models"
)

func (s *Server) ListLinks(c *gin.Context) {
	c.JSON(http.StatusOK, s.Store.Links())
}

func (s *Server) CreateLink(c *gin.Context) {
	var req models.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.EggID < 0 || req.EggID > s.Store.TotalEggs() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid egg id"})
		return
	}
	link, err := s.Store.CreateLink(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, link)
}

func (s *Server) DeleteLink(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid link id"})
		return
	}
	if !s.Store.DeleteLink(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "link not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

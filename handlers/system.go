package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aipsms/ai-engine/models"
	"github.com/aipsms/ai-engine/tools"
)

// Version is reported by the health check and the MCP server.
const Version = "1.0.0"

// Banner is the root endpoint greeting.
const Banner = "AIPSMS AI Engine is Powered Up 🚀"

// Root returns the service banner
// @Summary Service banner
// @Description Confirm the engine is up
// @Tags System
// @Produce json
// @Success 200 {object} models.MessageResponse "Banner"
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: Banner})
}

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and healthy
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// ListTools returns the tools exposed over MCP
// @Summary List available tools
// @Description Get a list of all available MCP tools for AI agents
// @Tags Tools
// @Produce json
// @Success 200 {object} map[string]interface{} "List of tools"
// @Router /tools [get]
func ListTools(registry *tools.ToolRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := registry.List()
		defs := make([]gin.H, 0, len(list))
		for _, t := range list {
			defs = append(defs, gin.H{
				"name":        t.Name(),
				"description": t.Description(),
				"parameters":  t.InputSchema(),
			})
		}
		c.JSON(http.StatusOK, gin.H{"tools": defs})
	}
}

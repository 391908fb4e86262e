package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db      *gorm.DB
	started time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db:      db,
		started: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string         `json:"status"`
	Timestamp   time.Time      `json:"timestamp"`
	Uptime      float64        `json:"uptime"`
	Database    DatabaseStatus `json:"database"`
	Environment string         `json:"environment"`
	Version     string         `json:"version"`
}

// DatabaseStatus reports database connectivity
type DatabaseStatus struct {
	Status string `json:"status"`
}

func (h *HealthHandler) databaseStatus() string {
	sqlDB, err := h.db.DB()
	if err != nil {
		return "disconnected"
	}
	if err := sqlDB.Ping(); err != nil {
		return "disconnected"
	}
	return "connected"
}

// Health returns the overall health of the application
// @Summary Health check
// @Description Get the health status of the application including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := h.databaseStatus()

	response := HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC(),
		Uptime:      time.Since(h.started).Seconds(),
		Database:    DatabaseStatus{Status: dbStatus},
		Environment: gin.Mode(),
		Version:     "1.0.0",
	}

	status := http.StatusOK
	if dbStatus != "connected" {
		response.Status = "error"
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}

// Ready reports whether the application can serve requests
// @Summary Readiness check
// @Description Check if the application is ready to serve requests
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Ready"
// @Failure 503 {object} map[string]string "Not ready"
// @Router /api/health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.databaseStatus() != "connected" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live reports whether the process is alive
// @Summary Liveness check
// @Description Check if the application process is alive
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Alive"
// @Router /api/health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

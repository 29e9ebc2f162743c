package api

import (
	"net/http"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/database"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/pipeline"
)

type Handler struct {
	db      *database.Database
	runner  *pipeline.Runner
	logger  *logrus.Logger
	running atomic.Bool
}

type RestaurantFilter struct {
	Neighborhood string  `form:"neighborhood"`
	Cuisine      string  `form:"cuisine"`
	MinRating    float64 `form:"min_rating"`
}

func NewHandler(db *database.Database, runner *pipeline.Runner, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		db:     db,
		runner: runner,
		logger: logger,
	}
}

func (h *Handler) GetRestaurants(c *gin.Context) {
	var filter RestaurantFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.logger.WithError(err).Error("Failed to parse restaurant filter")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters"})
		return
	}

	restaurants, err := h.db.GetRestaurants(filter.Neighborhood, filter.Cuisine, filter.MinRating)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get restaurants")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get restaurants"})
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

func (h *Handler) GetTopRated(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 10
	}

	restaurants, err := h.db.GetTopRated(limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get top rated restaurants")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get top rated restaurants"})
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

func (h *Handler) GetReviews(c *gin.Context) {
	businessID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business id"})
		return
	}

	reviews, err := h.db.GetReviews(businessID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.db.GetStoredStats()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get stored stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetAnalysis(c *gin.Context) {
	location := c.DefaultQuery("location", "Santo Domingo, República Dominicana")
	analysis, err := h.db.GetLatestAnalysis(location, "market")
	if err != nil {
		h.logger.WithError(err).Error("Failed to get latest analysis")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get analysis"})
		return
	}
	if analysis == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No analysis available yet"})
		return
	}

	c.Data(http.StatusOK, "application/json", analysis)
}

func (h *Handler) GetSessions(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 20
	}

	sessions, err := h.db.GetSessions(limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get sessions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get sessions"})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// RunGeneration starts a full pipeline run in the background. Only one
// run is allowed at a time.
func (h *Handler) RunGeneration(c *gin.Context) {
	if h.runner == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Generation pipeline is not configured"})
		return
	}
	if !h.running.CompareAndSwap(false, true) {
		c.JSON(http.StatusConflict, gin.H{"error": "A generation run is already in progress"})
		return
	}

	go func() {
		defer h.running.Store(false)
		if _, err := h.runner.Run(); err != nil {
			h.logger.WithError(err).Error("Background generation run failed")
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "success",
		"message": "Generation run started",
	})
}

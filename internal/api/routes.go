package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/database"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/pipeline"
)

func SetupRoutes(router *gin.Engine, db *database.Database, runner *pipeline.Runner, logger *logrus.Logger) {
	handler := NewHandler(db, runner, logger)

	api := router.Group("/api")
	{
		api.GET("/restaurants", handler.GetRestaurants)
		api.GET("/restaurants/:id/reviews", handler.GetReviews)
		api.GET("/top-rated", handler.GetTopRated)
		api.GET("/stats", handler.GetStats)
		api.GET("/analysis", handler.GetAnalysis)
		api.GET("/sessions", handler.GetSessions)
		api.POST("/generate", handler.RunGeneration)
	}
}

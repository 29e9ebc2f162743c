package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/config"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/database"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/models"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/queue"
)

// BatchProcessor drains the restaurant queue into the database, one
// transaction per batch with retries.
type BatchProcessor struct {
	db     *gorm.DB
	queue  *queue.RestaurantQueue
	config *config.Config
	logger *logrus.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

// NewBatchProcessor creates a new batch processor instance.
func NewBatchProcessor(db *gorm.DB, q *queue.RestaurantQueue, cfg *config.Config, logger *logrus.Logger) *BatchProcessor {
	ctx, cancel := context.WithCancel(context.Background())
	return &BatchProcessor{
		db:     db,
		queue:  q,
		config: cfg,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start subscribes to the queue and launches the dispatch workers.
func (p *BatchProcessor) Start() {
	p.queue.Subscribe(p.processBatch)
	p.queue.Start(p.config.BatchProcessing.ProcessorCount)
}

// Stop aborts any in-flight retry waits. The queue itself is closed by
// its owner.
func (p *BatchProcessor) Stop() {
	p.cancel()
}

// processBatch persists a single batch with transaction and retry logic.
func (p *BatchProcessor) processBatch(batch []*models.Restaurant) error {
	var err error
	for attempt := 0; attempt <= p.config.BatchProcessing.MaxRetries; attempt++ {
		if attempt > 0 {
			p.logger.Infof("Retrying batch processing, attempt %d of %d", attempt, p.config.BatchProcessing.MaxRetries)
			select {
			case <-p.ctx.Done():
				return p.ctx.Err()
			case <-time.After(time.Duration(p.config.BatchProcessing.RetryDelay) * time.Second):
			}
		}

		err = p.db.Transaction(func(tx *gorm.DB) error {
			if err := database.UpsertRestaurants(tx, batch); err != nil {
				return fmt.Errorf("failed to upsert restaurant batch: %w", err)
			}
			return nil
		})

		if err == nil {
			p.logger.Infof("Successfully processed batch of %d restaurants", len(batch))
			return nil
		}

		p.logger.Errorf("Batch processing failed: %v", err)
	}

	return fmt.Errorf("failed to process batch after %d attempts: %w", p.config.BatchProcessing.MaxRetries, err)
}

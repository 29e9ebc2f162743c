package queue

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/models"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// RestaurantQueue is an in-memory queue of restaurant batches sitting
// between the generation pipeline and the batch processors.
type RestaurantQueue struct {
	batches  chan []*models.Restaurant
	done     chan struct{}
	maxSize  int
	closed   bool
	mu       sync.RWMutex
	wg       sync.WaitGroup
	logger   *logrus.Logger
	handlers []func([]*models.Restaurant) error
}

// NewRestaurantQueue creates a queue holding up to bufferSize batches.
func NewRestaurantQueue(bufferSize int, logger *logrus.Logger) *RestaurantQueue {
	if logger == nil {
		logger = logrus.New()
	}
	return &RestaurantQueue{
		batches: make(chan []*models.Restaurant, bufferSize),
		done:    make(chan struct{}),
		maxSize: bufferSize,
		logger:  logger,
	}
}

// Push adds a batch without blocking; a full queue returns ErrQueueFull
// so the producer can decide what to drop.
func (q *RestaurantQueue) Push(batch []*models.Restaurant) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return ErrQueueClosed
	}
	q.mu.RUnlock()

	select {
	case q.batches <- batch:
		q.logger.WithField("batch_size", len(batch)).Debug("Pushed batch to queue")
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe registers a handler invoked once per batch. Register all
// handlers before Start.
func (q *RestaurantQueue) Subscribe(handler func([]*models.Restaurant) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start launches the dispatch workers. Each batch is delivered to every
// handler exactly once.
func (q *RestaurantQueue) Start(workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.dispatch()
	}
}

func (q *RestaurantQueue) dispatch() {
	defer q.wg.Done()
	for {
		select {
		case <-q.done:
			return
		case batch, ok := <-q.batches:
			if !ok {
				return
			}
			q.deliver(batch)
		}
	}
}

func (q *RestaurantQueue) deliver(batch []*models.Restaurant) {
	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(batch); err != nil {
			q.logger.WithError(err).Error("Handler failed to process batch")
		}
	}
}

// Close stops the queue and prevents new pushes. Safe to call twice.
func (q *RestaurantQueue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.done)
	q.mu.Unlock()

	q.wg.Wait()
	return nil
}

// Len returns the number of batches waiting in the queue.
func (q *RestaurantQueue) Len() int {
	return len(q.batches)
}

// IsClosed reports whether the queue has been closed.
func (q *RestaurantQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}

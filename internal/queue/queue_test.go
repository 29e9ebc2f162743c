package queue

import (
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/models"
)

func TestNewRestaurantQueue(t *testing.T) {
	logger := logrus.New()
	q := NewRestaurantQueue(10, logger)
	assert.NotNil(t, q)
	assert.Equal(t, 10, q.maxSize)
	assert.False(t, q.IsClosed())
}

func TestRestaurantQueue_Push(t *testing.T) {
	logger := logrus.New()
	q := NewRestaurantQueue(2, logger)

	// Test successful push
	batch := []*models.Restaurant{{Name: "El Sabor Criollo"}}
	err := q.Push(batch)
	assert.NoError(t, err)
	assert.Equal(t, 1, q.Len())

	// Test queue full
	for i := 0; i < 2; i++ {
		_ = q.Push([]*models.Restaurant{{Name: "Casa del Mofongo"}})
	}
	err = q.Push(batch)
	assert.Equal(t, ErrQueueFull, err)

	// Test closed queue
	q.Close()
	err = q.Push(batch)
	assert.Equal(t, ErrQueueClosed, err)
}

func TestRestaurantQueue_Subscribe(t *testing.T) {
	logger := logrus.New()
	q := NewRestaurantQueue(10, logger)

	var processed []*models.Restaurant
	var mu sync.Mutex

	q.Subscribe(func(batch []*models.Restaurant) error {
		mu.Lock()
		processed = append(processed, batch...)
		mu.Unlock()
		return nil
	})

	q.Start(1)

	batch := []*models.Restaurant{{Name: "La Terraza"}, {Name: "Rincón Dominicano"}}
	err := q.Push(batch)
	assert.NoError(t, err)

	// Wait for processing
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, 2, len(processed))
	assert.Equal(t, "La Terraza", processed[0].Name)
	assert.Equal(t, "Rincón Dominicano", processed[1].Name)
	mu.Unlock()

	q.Close()
}

func TestRestaurantQueue_DeliversToAllHandlersOnce(t *testing.T) {
	logger := logrus.New()
	q := NewRestaurantQueue(10, logger)

	var wg sync.WaitGroup
	handlerCalls := 0
	var mu sync.Mutex

	for i := 0; i < 3; i++ {
		wg.Add(1)
		q.Subscribe(func(batch []*models.Restaurant) error {
			mu.Lock()
			handlerCalls++
			mu.Unlock()
			wg.Done()
			return nil
		})
	}

	// Multiple workers must not duplicate deliveries
	q.Start(2)

	err := q.Push([]*models.Restaurant{{Name: "Pica Pollo Express"}})
	assert.NoError(t, err)

	wg.Wait()
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, 3, handlerCalls)
	mu.Unlock()

	q.Close()
}

func TestRestaurantQueue_Close(t *testing.T) {
	logger := logrus.New()
	q := NewRestaurantQueue(10, logger)

	// Test first close
	err := q.Close()
	assert.NoError(t, err)
	assert.True(t, q.IsClosed())

	// Test second close (should be no-op)
	err = q.Close()
	assert.NoError(t, err)
}

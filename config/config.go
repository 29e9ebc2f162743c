package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Server configuration
	Server struct {
		Port string `env:"SERVER_PORT" envDefault:"5250"`
	}

	// Database configuration
	Database struct {
		Path string `env:"DATABASE_PATH" envDefault:"database/restaurants.db"`
	}

	// Generation configuration
	Generation struct {
		// Target location stamped on every record and result document
		Location string `env:"TARGET_LOCATION" envDefault:"Santo Domingo, República Dominicana"`

		// Maximum number of restaurants returned per run
		MaxResults int `env:"MAX_RESULTS" envDefault:"500"`

		// Directory where result documents are written
		ResultsDir string `env:"RESULTS_DIR" envDefault:"data/raw"`
	}

	// Pipeline configuration
	Pipeline struct {
		// Cadence of scheduled runs: hourly, daily or weekly
		UpdateFrequency string `env:"UPDATE_FREQUENCY" envDefault:"daily"`

		// Number of restaurants per persisted batch
		BatchSize int `env:"BATCH_SIZE" envDefault:"50"`

		// Whether the scheduler runs at all (the API can still trigger runs)
		EnableScheduling bool `env:"ENABLE_SCHEDULING" envDefault:"true"`
	}

	// BatchProcessing configuration
	BatchProcessing struct {
		// Buffered batches the queue holds before Push fails
		QueueSize int `env:"BATCH_QUEUE_SIZE" envDefault:"100"`

		// Number of concurrent batch processors
		ProcessorCount int `env:"BATCH_PROCESSOR_COUNT" envDefault:"2"`

		// Maximum number of retries for failed batches
		MaxRetries int `env:"BATCH_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in seconds
		RetryDelay int `env:"BATCH_RETRY_DELAY" envDefault:"5"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

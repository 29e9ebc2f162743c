package database

import "fmt"

func (d *Database) RunMigrations() error {
	// Businesses table; the (name, address, location) key drives upserts
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS businesses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			address TEXT,
			phone TEXT,
			website TEXT,
			rating REAL,
			review_count INTEGER,
			business_type TEXT NOT NULL,
			cuisine_type TEXT,
			price_range TEXT,
			location TEXT NOT NULL,
			neighborhood TEXT,
			latitude REAL,
			longitude REAL,
			opening_hours TEXT,
			features TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(name, address, location)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create businesses table: %v", err)
	}

	_, err = d.db.Exec(`
		CREATE TABLE IF NOT EXISTS reviews (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			business_id INTEGER NOT NULL,
			text TEXT NOT NULL,
			reviewer TEXT,
			rating INTEGER,
			review_date TEXT,
			sentiment_score REAL,
			sentiment_label TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (business_id) REFERENCES businesses(id) ON DELETE CASCADE
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create reviews table: %v", err)
	}

	_, err = d.db.Exec(`
		CREATE TABLE IF NOT EXISTS generation_sessions (
			id TEXT PRIMARY KEY,
			location TEXT NOT NULL,
			business_type TEXT NOT NULL,
			restaurants_generated INTEGER DEFAULT 0,
			reviews_generated INTEGER DEFAULT 0,
			status TEXT DEFAULT 'running',
			started_at TIMESTAMP,
			completed_at TIMESTAMP,
			error_message TEXT
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create generation_sessions table: %v", err)
	}

	_, err = d.db.Exec(`
		CREATE TABLE IF NOT EXISTS market_analysis (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			location TEXT NOT NULL,
			business_type TEXT NOT NULL,
			analysis_type TEXT NOT NULL,
			results TEXT,
			created_at TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create market_analysis table: %v", err)
	}

	// Spatial index on coordinates
	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_businesses_coordinates
		ON businesses(latitude, longitude);
	`)
	if err != nil {
		return err
	}

	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reviews_business_id
		ON reviews(business_id);
	`)
	if err != nil {
		return err
	}

	return nil
}

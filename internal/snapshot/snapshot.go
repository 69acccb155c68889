// Package snapshot persists the last successfully fetched catalogue in a
// local sqlite database so the storefront keeps rendering while the
// backend is down.
package snapshot

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ahmadsvu/stationery-hub-frontend/app/models"
	"github.com/ahmadsvu/stationery-hub-frontend/config"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/collection"
)

type productRow struct {
	ID          string `gorm:"primaryKey;column:id"`
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
	FetchedAt   time.Time
}

func (productRow) TableName() string { return "product_snapshots" }

type blogRow struct {
	ID        string `gorm:"primaryKey;column:id"`
	Title     string
	Content   string
	Image     string
	Author    string
	Published string
	FetchedAt time.Time
}

func (blogRow) TableName() string { return "blog_snapshots" }

// Store is the sqlite-backed catalogue snapshot.
type Store struct {
	db *gorm.DB
}

// Open opens the configured snapshot database and migrates its schema.
func Open() (*Store, error) {
	return OpenAt(config.SnapshotDSN())
}

// OpenAt opens a snapshot database at an explicit DSN.
func OpenAt(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent), // use pkg/logger, not GORM's own
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: open: %w", err)
	}

	// A single local file needs no pool to speak of.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("snapshot: get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.AutoMigrate(&productRow{}, &blogRow{}); err != nil {
		return nil, fmt.Errorf("snapshot: migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveProducts replaces the stored product set with the given one.
func (s *Store) SaveProducts(products []models.Product) error {
	now := time.Now()
	rows := collection.Map(products, func(p models.Product) productRow {
		return productRow{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Image:       p.Image,
			Category:    p.Category,
			FetchedAt:   now,
		}
	})
	return s.replace(&productRow{}, rows)
}

// LoadProducts returns the stored product set, empty when nothing was ever
// saved.
func (s *Store) LoadProducts() ([]models.Product, error) {
	var rows []productRow
	if err := s.db.Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("snapshot: load products: %w", err)
	}
	return collection.Map(rows, func(r productRow) models.Product {
		return models.Product{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Price:       r.Price,
			Image:       r.Image,
			Category:    r.Category,
		}
	}), nil
}

// SaveBlogs replaces the stored blog set with the given one.
func (s *Store) SaveBlogs(posts []models.BlogPost) error {
	now := time.Now()
	rows := collection.Map(posts, func(p models.BlogPost) blogRow {
		return blogRow{
			ID:        p.ID,
			Title:     p.Title,
			Content:   p.Content,
			Image:     p.Image,
			Author:    p.Author,
			Published: p.CreatedAt,
			FetchedAt: now,
		}
	})
	return s.replace(&blogRow{}, rows)
}

// LoadBlogs returns the stored blog set.
func (s *Store) LoadBlogs() ([]models.BlogPost, error) {
	var rows []blogRow
	if err := s.db.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("snapshot: load blogs: %w", err)
	}
	return collection.Map(rows, func(r blogRow) models.BlogPost {
		return models.BlogPost{
			ID:        r.ID,
			Title:     r.Title,
			Content:   r.Content,
			Image:     r.Image,
			Author:    r.Author,
			CreatedAt: r.Published,
		}
	}), nil
}

// replace swaps a whole table inside one transaction so readers never see
// a half-written snapshot.
func (s *Store) replace(model interface{}, rows interface{}) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("snapshot: clear: %w", err)
		}
		if err := tx.CreateInBatches(rows, 100).Error; err != nil {
			return fmt.Errorf("snapshot: insert: %w", err)
		}
		return nil
	})
}

package cart

import (
	"fmt"
	"time"

	"github.com/ahmadsvu/stationery-hub-frontend/app/models"
	"github.com/ahmadsvu/stationery-hub-frontend/config"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/cache"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/statefile"
)

// cartRecord is the persisted shape. The namespace key mirrors the
// original client's storage record name.
const (
	recordName = "cart"
	redisKey   = "stationery-store:cart"
)

// Driver persists the cart between sessions. Load returning (nil, nil)
// means "no cart saved yet".
type Driver interface {
	Load() ([]models.CartItem, error)
	Save(items []models.CartItem) error
}

// OpenDriver picks the configured driver. An unreachable Redis falls back
// to the statefile driver rather than failing boot.
func OpenDriver(files *statefile.Store) Driver {
	if config.CartDriver() == "redis" && cache.Available() {
		return &redisDriver{}
	}
	return &fileDriver{files: files}
}

// ─── statefile driver ────────────────────────────────────────────────────────

type fileDriver struct {
	files *statefile.Store
}

func (d *fileDriver) Load() ([]models.CartItem, error) {
	var items []models.CartItem
	ok, err := d.files.Get(recordName, &items)
	if err != nil {
		return nil, fmt.Errorf("cart: load: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return items, nil
}

func (d *fileDriver) Save(items []models.CartItem) error {
	return d.files.Put(recordName, items)
}

// ─── redis driver ────────────────────────────────────────────────────────────

type redisDriver struct{}

func (d *redisDriver) Load() ([]models.CartItem, error) {
	var items []models.CartItem
	if !cache.Get(redisKey, &items) {
		return nil, nil
	}
	return items, nil
}

func (d *redisDriver) Save(items []models.CartItem) error {
	// No TTL — a cart should survive until the user empties it.
	return cache.Set(redisKey, items, time.Duration(0))
}

// ─── memory driver (tests) ───────────────────────────────────────────────────

// MemoryDriver keeps the cart in process memory only.
type MemoryDriver struct {
	items []models.CartItem
	saves int
}

func (d *MemoryDriver) Load() ([]models.CartItem, error) {
	return d.items, nil
}

func (d *MemoryDriver) Save(items []models.CartItem) error {
	d.items = items
	d.saves++
	return nil
}

// Saves reports how many times Save ran.
func (d *MemoryDriver) Saves() int { return d.saves }

// Items returns the last persisted state.
func (d *MemoryDriver) Items() []models.CartItem { return d.items }

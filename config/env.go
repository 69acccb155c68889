package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultBackendOrigin = "http://localhost:5000"
	defaultStateDir      = ".hub"
	defaultCartDriver    = "statefile"
	defaultSnapshotDSN   = "catalog-snapshot.db"
	defaultRedisAddr     = "localhost:6379"
	defaultSessionSecret = "change-me-in-production"
	defaultAppPort       = "8080"
	defaultAppEnv        = "local"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"BACKEND_ORIGIN":        defaultBackendOrigin,
		"STATE_DIR":             defaultStateDir,
		"CART_DRIVER":           defaultCartDriver,
		"SNAPSHOT_DSN":          "",
		"REDIS_ADDR":            defaultRedisAddr,
		"REDIS_PASSWORD":        "",
		"SESSION_SECRET":        defaultSessionSecret,
		"SESSION_TTL_HOURS":     "24",
		"PROBE_INTERVAL_SECONDS": "30",
		"PROBE_TIMEOUT_SECONDS":  "5",
		"APP_PORT":              defaultAppPort,
		"APP_ENV":               defaultAppEnv,
		"MONGO_LOG_URI":         "",
		"MONGO_LOG_DB":          "stationeryhub",
		"MONGO_LOG_COLLECTION":  "logs",
	}
}

// BackendOrigin is the base URL of the remote storefront backend.
// All REST paths in internal/backend are resolved against it.
func BackendOrigin() string {
	_ = Load()
	return strings.TrimRight(get("BACKEND_ORIGIN", defaultBackendOrigin), "/")
}

// StateDir is where the client keeps its durable records: the cart,
// the admin session, and the catalog snapshot database.
func StateDir() string {
	_ = Load()
	return get("STATE_DIR", defaultStateDir)
}

// CartDriver selects the cart persistence backend.
func CartDriver() string {
	_ = Load()

	driver := strings.ToLower(get("CART_DRIVER", defaultCartDriver))
	switch driver {
	case "statefile", "redis":
		return driver
	default:
		return defaultCartDriver
	}
}

// SnapshotDSN is the sqlite file holding the offline catalog snapshot.
// Relative paths are resolved under StateDir.
func SnapshotDSN() string {
	_ = Load()

	dsn := get("SNAPSHOT_DSN", "")
	if dsn == "" {
		dsn = defaultSnapshotDSN
	}
	if strings.HasPrefix(dsn, "/") || strings.HasPrefix(dsn, "file:") {
		return dsn
	}
	return StateDir() + "/" + dsn
}

func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", defaultRedisAddr)
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

// SessionSecret signs the local admin session token.
func SessionSecret() string {
	_ = Load()
	return get("SESSION_SECRET", defaultSessionSecret)
}

// SessionTTL is how long an admin login stays valid.
func SessionTTL() time.Duration {
	_ = Load()
	return durationOf(get("SESSION_TTL_HOURS", "24"), 24, time.Hour)
}

// ProbeInterval is the pause between backend reachability checks.
func ProbeInterval() time.Duration {
	_ = Load()
	return durationOf(get("PROBE_INTERVAL_SECONDS", "30"), 30, time.Second)
}

// ProbeTimeout bounds a single reachability check.
func ProbeTimeout() time.Duration {
	_ = Load()
	return durationOf(get("PROBE_TIMEOUT_SECONDS", "5"), 5, time.Second)
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// ── Mongo log sink ───────────────────────────────────────────────────────────

func MongoLogURI() string        { _ = Load(); return get("MONGO_LOG_URI", "") }
func MongoLogDB() string         { _ = Load(); return get("MONGO_LOG_DB", "stationeryhub") }
func MongoLogCollection() string { _ = Load(); return get("MONGO_LOG_COLLECTION", "logs") }

func durationOf(raw string, fallback int, unit time.Duration) time.Duration {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		n = fallback
	}
	return time.Duration(n) * unit
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}

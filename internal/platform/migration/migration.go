package migration

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var defaultDirs = []string{"./db/migrations", "/app/db/migrations"}

// New opens a migrator over the SQL files in dir.
func New(dir, dbURL string) (*migrate.Migrate, string, error) {
	migrationsDir, err := ResolveDir(dir)
	if err != nil {
		return nil, "", err
	}

	sourceURL := "file://" + filepath.ToSlash(migrationsDir)
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return nil, "", fmt.Errorf("create migrator: %w", err)
	}
	return m, sourceURL, nil
}

// Up applies pending migrations. No pending change is not an error.
func Up(m *migrate.Migrate) (bool, error) {
	err := m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("apply migrations: %w", err)
	}
	return true, nil
}

// Close releases both the source and the database driver.
func Close(m *migrate.Migrate) error {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		return fmt.Errorf("close migration source: %w", srcErr)
	}
	if dbErr != nil {
		return fmt.Errorf("close migration db: %w", dbErr)
	}
	return nil
}

// ResolveDir returns the first existing directory out of the explicit
// one, MIGRATIONS_DIR and the default locations.
func ResolveDir(explicit string) (string, error) {
	candidates := []string{
		strings.TrimSpace(explicit),
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
	}
	candidates = append(candidates, defaultDirs...)

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("migration directory not found (checked explicit dir, MIGRATIONS_DIR, %s)", strings.Join(defaultDirs, ", "))
}

// NormalizeDBURL adds disable_prepared_binary_result=yes unless the URL
// already sets it. Pooled connections in transaction mode need it.
func NormalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

const fieldPlaceholder = "{{field}}"

var fieldNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,39}$`)

// RunMigrations executes all .up.sql migrations from migrationsPath in name
// order. Occurrences of {{field}} are replaced with the bounds field name so
// the column layout follows configuration.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, migrationsPath, fieldName string) error {
	if !fieldNamePattern.MatchString(fieldName) {
		return fmt.Errorf("invalid field name %q", fieldName)
	}

	files, err := os.ReadDir(migrationsPath)
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(f.Name(), ".up.sql") {
			upFiles = append(upFiles, f.Name())
		}
	}

	sort.Strings(upFiles)

	for _, filename := range upFiles {
		content, err := os.ReadFile(filepath.Join(migrationsPath, filename))
		if err != nil {
			return fmt.Errorf("reading migration file %s: %w", filename, err)
		}

		sql := strings.ReplaceAll(string(content), fieldPlaceholder, fieldName)
		if _, err := pool.Exec(ctx, sql); err != nil {
			return fmt.Errorf("executing migration %s: %w", filename, err)
		}
	}

	return nil
}

package helper

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"todomac/config"
	"todomac/infras/postgres"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	// RecreateScript drops and recreates the application database and role. It runs first,
	// on the admin connection, and is skipped by the per-file pass.
	RecreateScript = "00_recreate_db.sql"

	scriptExtension    = ".sql"
	statementSeparator = ";"
)

var ErrStatementFailed = errors.New("bootstrap statement failed")

// SplitStatements splits a script on ';' and drops blank statements.
// Semicolons inside string literals or function bodies are not supported.
func SplitStatements(content string) []string {
	parts := strings.Split(content, statementSeparator)
	statements := make([]string, 0, len(parts))

	for _, part := range parts {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}

	return statements
}

// ScriptFiles lists the .sql files in dir in lexicographic order, without the recreate script.
func ScriptFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing bootstrap scripts: %w", err)
	}

	files := make([]string, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, scriptExtension) || name == RecreateScript {
			continue
		}

		files = append(files, filepath.Join(dir, name))
	}

	sort.Strings(files)

	return files, nil
}

// ExecScript runs every statement of the file at path. In strict mode the first failing
// statement aborts; otherwise failures are logged and the next statement runs.
// A file that cannot be read always aborts.
func ExecScript(ctx context.Context, exec sqlx.ExecerContext, path string, strict bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading bootstrap script: %w", err)
	}

	for _, statement := range SplitStatements(string(content)) {
		if _, err := exec.ExecContext(ctx, statement); err != nil {
			if strict {
				return fmt.Errorf("%w in %s: %w", ErrStatementFailed, filepath.Base(path), err)
			}

			log.Warn().
				Err(err).
				Str("file", filepath.Base(path)).
				Str("statement", statement).
				Msg("bootstrap statement failed, continuing")
		}
	}

	log.Info().Str("file", filepath.Base(path)).Msg("bootstrap script applied")

	return nil
}

// ApplyScripts runs every script in dir except the recreate script, in filename order.
func ApplyScripts(ctx context.Context, app sqlx.ExecerContext, dir string) (int, error) {
	files, err := ScriptFiles(dir)
	if err != nil {
		return 0, err
	}

	for _, file := range files {
		if err := ExecScript(ctx, app, file, false); err != nil {
			return 0, err
		}
	}

	return len(files), nil
}

// Bootstrap recreates the development database from the configured SQL directory.
// It destroys all data and must not be pointed at a production server.
func Bootstrap(ctx context.Context, cfg *config.Config) error {
	pg := cfg.DB.Postgres

	admin, err := postgres.Connect(ctx, "root", pg.Root, cfg)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer admin.Close()

	if err := ExecScript(ctx, admin, filepath.Join(pg.SQLDir, RecreateScript), true); err != nil {
		return err
	}

	app, err := postgres.Connect(ctx, "bootstrap", pg.Write, cfg)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer app.Close()

	applied, err := ApplyScripts(ctx, app, pg.SQLDir)
	if err != nil {
		return err
	}

	log.Info().Int("scripts", applied+1).Msg("database bootstrap completed")

	return nil
}

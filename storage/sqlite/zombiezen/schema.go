package zombiezen

import (
	"context"
	"embed"
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"
)

// sqlFiles embeds the schema scripts from the sql/ subdirectory.
//
//go:embed sql/*.sql
var sqlFiles embed.FS

// CreateDocTables creates the docs, sentences and sentence_lemmas
// tables along with their indexes. Safe to call on an existing cache.
func CreateDocTables(pool *sqlitex.Pool) error {
	script, err := sqlFiles.ReadFile("sql/docs.sql")
	if err != nil {
		return fmt.Errorf("failed to read embedded schema: %w", err)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecScript(conn, string(script)); err != nil {
		return fmt.Errorf("failed to execute schema script: %w", err)
	}

	return nil
}

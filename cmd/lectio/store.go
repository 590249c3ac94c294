package main

import (
	"fmt"
	"os"

	"lectio/storage"
	"lectio/storage/filesystem"
	"lectio/storage/sqlite/zombiezen"
)

// openDocRepository opens the analysis cache at path. A directory is a
// filesystem store of JSON docs, anything else is treated as a SQLite
// file. The returned closer must be called when done.
func openDocRepository(path string) (storage.DocRepository, func(), error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		store, err := filesystem.NewDocStore(path)
		if err != nil {
			return nil, nil, err
		}
		if err := store.LoadAll(nil); err != nil {
			return nil, nil, err
		}

		return store, func() {}, nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, nil, err
	}

	if err := zombiezen.CreateDocTables(pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to create docs table: %w", err)
	}

	return zombiezen.NewDocStore(pool), func() { pool.Close() }, nil
}

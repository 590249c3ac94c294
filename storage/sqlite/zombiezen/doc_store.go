package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"lectio/storage"
	"lectio/word"
)

// DocStore is the SQLite-backed analysis cache.
type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (h *DocStore) List() ([]storage.DocInfo, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs []storage.DocInfo
	err = sqlitex.Execute(conn, "SELECT id, language, title, labels FROM docs ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			info := storage.DocInfo{
				Id:       stmt.ColumnInt(0),
				Language: stmt.ColumnText(1),
				Title:    stmt.ColumnText(2),
			}
			labelsStr := stmt.ColumnText(3)
			if labelsStr != "" {
				info.Labels = strings.Split(labelsStr, ",")
			}
			docs = append(docs, info)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func (h *DocStore) Read(id int) (word.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return word.Doc{}, err
	}
	defer h.pool.Put(conn)

	var doc word.Doc
	found := false

	err = sqlitex.Execute(conn, "SELECT language, title, labels FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Language = stmt.ColumnText(0)
			doc.Title = stmt.ColumnText(1)
			if labels := stmt.ColumnText(2); labels != "" {
				doc.Labels = strings.Split(labels, ",")
			}
			return nil
		},
	})
	if err != nil {
		return word.Doc{}, err
	}
	if !found {
		return word.Doc{}, fmt.Errorf("doc not found: %d", id)
	}

	err = sqlitex.Execute(conn, "SELECT data FROM sentences WHERE doc_id = ? ORDER BY sent_id", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var s word.Sentence
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &s); err != nil {
				return err
			}
			doc.Sentences = append(doc.Sentences, s)
			return nil
		},
	})
	if err != nil {
		return word.Doc{}, err
	}

	return doc, nil
}

// FindCandidates pages through sentences that contain ALL given lemmas,
// using the lemma index. INTERSECT keeps the rowid set unique and
// restricted to sentences covering every lemma.
func (h *DocStore) FindCandidates(lemmas []string, after storage.Cursor, limit int, onCandidate func(storage.SentenceResult) error) (storage.Cursor, error) {
	if len(lemmas) == 0 {
		return after, nil
	}

	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return after, err
	}
	defer h.pool.Put(conn)

	var queryBuilder strings.Builder
	var args []interface{}

	for i, lemma := range lemmas {
		if i > 0 {
			queryBuilder.WriteString(" INTERSECT ")
		}
		queryBuilder.WriteString("SELECT sentence_rowid FROM sentence_lemmas WHERE lemma = ? AND sentence_rowid > ?")
		args = append(args, lemma, int64(after))
	}
	queryBuilder.WriteString(" LIMIT ?")
	args = append(args, limit)

	var rowIDs []int64
	err = sqlitex.Execute(conn, queryBuilder.String(), &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowIDs = append(rowIDs, stmt.ColumnInt64(0))
			return nil
		},
	})
	if err != nil {
		return after, err
	}

	if len(rowIDs) == 0 {
		return after, nil
	}

	idStrings := make([]string, len(rowIDs))
	for i, id := range rowIDs {
		idStrings[i] = strconv.FormatInt(id, 10)
	}
	query := fmt.Sprintf(
		"SELECT s.rowid, s.doc_id, s.data, d.title, d.language FROM sentences s JOIN docs d ON d.id = s.doc_id WHERE s.rowid IN (%s) ORDER BY s.rowid",
		strings.Join(idStrings, ","))

	newCursor := after
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowID := stmt.ColumnInt64(0)
			if storage.Cursor(rowID) > newCursor {
				newCursor = storage.Cursor(rowID)
			}

			res := storage.SentenceResult{
				RowID:    rowID,
				DocID:    stmt.ColumnInt(1),
				DocTitle: stmt.ColumnText(3),
				Language: stmt.ColumnText(4),
			}
			if err := json.Unmarshal([]byte(stmt.ColumnText(2)), &res.Sentence); err != nil {
				return err
			}

			return onCandidate(res)
		},
	})
	if err != nil {
		return after, err
	}

	return newCursor, nil
}

func (h *DocStore) Write(doc word.Doc) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Transaction over doc, sentences and lemma index.
	defer sqlitex.Save(conn)(&err)

	labels := strings.Join(doc.Labels, ",")
	err = sqlitex.Execute(conn, "INSERT INTO docs (language, title, labels) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Language, doc.Title, labels},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}
	docID := conn.LastInsertRowID()

	for _, sentence := range doc.Sentences {
		data, marshalErr := json.Marshal(sentence)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, sent_id, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{docID, sentence.Id, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}
		sentRowID := conn.LastInsertRowID()

		uniqueLemmas := make(map[string]bool)
		for _, w := range sentence.Words {
			if w.Lemma != "" {
				uniqueLemmas[w.Lemma] = true
			}
		}

		for lemma := range uniqueLemmas {
			err = sqlitex.Execute(conn, "INSERT INTO sentence_lemmas (lemma, sentence_rowid) VALUES (?, ?)", &sqlitex.ExecOptions{
				Args: []interface{}{lemma, sentRowID},
			})
			if err != nil {
				return fmt.Errorf("failed to insert lemma: %w", err)
			}
		}
	}

	return nil
}

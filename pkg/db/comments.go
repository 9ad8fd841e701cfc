package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dtnitsch/fatigue-explorer/models"
)

// Import describes one catalog import run.
type Import struct {
	ImportID             int64
	CreatedAt            time.Time
	Source               string
	ContentHash          string
	RecordCount          int
	SkippedDuplicates    int
	SkippedLowConfidence int
	MinConfidence        float64
}

// ReplaceComments swaps the stored catalog for comments in a single
// transaction. Earlier imports are removed. The new import's ID is returned.
func (db *DB) ReplaceComments(meta Import, comments []models.Comment) (int64, error) {
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now().UTC()
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after Commit

	if _, err := tx.Exec("DELETE FROM comments"); err != nil {
		return 0, fmt.Errorf("failed to clear comments: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM imports"); err != nil {
		return 0, fmt.Errorf("failed to clear imports: %w", err)
	}

	result, err := tx.Exec(`
		INSERT INTO imports (created_at, source, content_hash, record_count,
			skipped_duplicates, skipped_low_confidence, min_confidence)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, meta.CreatedAt, meta.Source, meta.ContentHash, len(comments),
		meta.SkippedDuplicates, meta.SkippedLowConfidence, meta.MinConfidence)
	if err != nil {
		return 0, fmt.Errorf("failed to insert import: %w", err)
	}

	importID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import ID: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO comments (import_id, position, comment_id, post_id, subreddit,
			post_title, body, fatigue_classification, confidence)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare comment insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range comments {
		if _, err := stmt.Exec(importID, i, c.CommentID, c.PostID, c.Subreddit,
			c.PostTitle, c.Text, c.Classification, c.Confidence); err != nil {
			return 0, fmt.Errorf("failed to insert comment %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}

	return importID, nil
}

// LoadComments returns the stored catalog in import order.
func (db *DB) LoadComments() ([]models.Comment, error) {
	rows, err := db.Query(`
		SELECT comment_id, post_id, subreddit, post_title, body,
			fatigue_classification, confidence
		FROM comments
		ORDER BY import_id, position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		var commentID, postID, subreddit sql.NullString
		if err := rows.Scan(&commentID, &postID, &subreddit, &c.PostTitle, &c.Text,
			&c.Classification, &c.Confidence); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.CommentID = commentID.String
		c.PostID = postID.String
		c.Subreddit = subreddit.String
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

// LatestImport returns the most recent import. found is false when the
// database has never been imported into.
func (db *DB) LatestImport() (imp Import, found bool, err error) {
	err = db.QueryRow(`
		SELECT import_id, created_at, source, content_hash, record_count,
			skipped_duplicates, skipped_low_confidence, min_confidence
		FROM imports
		ORDER BY created_at DESC, import_id DESC
		LIMIT 1
	`).Scan(&imp.ImportID, &imp.CreatedAt, &imp.Source, &imp.ContentHash,
		&imp.RecordCount, &imp.SkippedDuplicates, &imp.SkippedLowConfidence,
		&imp.MinConfidence)
	if err == sql.ErrNoRows {
		return Import{}, false, nil
	}
	if err != nil {
		return Import{}, false, fmt.Errorf("failed to get latest import: %w", err)
	}
	return imp, true, nil
}

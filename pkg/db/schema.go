package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Imports: one row per 'catalog import' run. Only the latest import's
-- comments are kept.
CREATE TABLE IF NOT EXISTS imports (
    import_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP NOT NULL,
    source TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    record_count INTEGER NOT NULL,
    skipped_duplicates INTEGER DEFAULT 0,
    skipped_low_confidence INTEGER DEFAULT 0,
    min_confidence REAL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_imports_created ON imports(created_at DESC);

-- Comments: classified comment records in catalog order
CREATE TABLE IF NOT EXISTS comments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    import_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    comment_id TEXT,
    post_id TEXT,
    subreddit TEXT,
    post_title TEXT NOT NULL DEFAULT '',
    body TEXT NOT NULL,
    fatigue_classification TEXT NOT NULL,
    confidence REAL NOT NULL,
    FOREIGN KEY (import_id) REFERENCES imports(import_id) ON DELETE CASCADE,
    UNIQUE(import_id, position)
);

CREATE INDEX IF NOT EXISTS idx_comments_import ON comments(import_id);
CREATE INDEX IF NOT EXISTS idx_comments_classification ON comments(fatigue_classification);
`

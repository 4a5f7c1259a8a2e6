package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// スキーマ定義(Postgres)
var postgresSchema = []string{
	`
CREATE TABLE IF NOT EXISTS articles (
    id           BIGSERIAL PRIMARY KEY,
    nickname     TEXT,
    author       TEXT,
    title        TEXT,
    description  TEXT,
    url          TEXT,
    url_to_image TEXT,
    published_at TEXT,
    content      TEXT,
    source_id    TEXT,
    source_name  TEXT,
    CONSTRAINT uq_articles_title_author UNIQUE (title, author)
)`,
	`
CREATE TABLE IF NOT EXISTS parents (
    id BIGSERIAL PRIMARY KEY
)`,
	`
CREATE TABLE IF NOT EXISTS children (
    id         BIGSERIAL PRIMARY KEY,
    name       TEXT NOT NULL,
    birth_date DATE NOT NULL,
    parent_id  BIGINT NOT NULL REFERENCES parents(id) ON DELETE CASCADE
)`,
	// 親ごとの子一覧取得用
	`CREATE INDEX IF NOT EXISTS idx_children_parent_id ON children(parent_id)`,
}

// スキーマ定義(SQLite)
// birth_date は YYYY-MM-DD 形式の TEXT で保持する
var sqliteSchema = []string{
	`
CREATE TABLE IF NOT EXISTS articles (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    nickname     TEXT,
    author       TEXT,
    title        TEXT,
    description  TEXT,
    url          TEXT,
    url_to_image TEXT,
    published_at TEXT,
    content      TEXT,
    source_id    TEXT,
    source_name  TEXT,
    CONSTRAINT uq_articles_title_author UNIQUE (title, author)
)`,
	`
CREATE TABLE IF NOT EXISTS parents (
    id INTEGER PRIMARY KEY AUTOINCREMENT
)`,
	`
CREATE TABLE IF NOT EXISTS children (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    name       TEXT NOT NULL,
    birth_date TEXT NOT NULL,
    parent_id  INTEGER NOT NULL REFERENCES parents(id) ON DELETE CASCADE
)`,
	`CREATE INDEX IF NOT EXISTS idx_children_parent_id ON children(parent_id)`,
}

// 子テーブルから順に削除する
var dropStatements = []string{
	`DROP INDEX IF EXISTS idx_children_parent_id`,
	`DROP TABLE IF EXISTS children`,
	`DROP TABLE IF EXISTS parents`,
	`DROP TABLE IF EXISTS articles`,
}

// MigrateUp creates the articles, parents and children tables if they do not exist.
// The dialect is chosen from the driver the pool was opened with.
func MigrateUp(db *sqlx.DB) error {
	var stmts []string
	switch db.DriverName() {
	case DriverPostgres:
		stmts = postgresSchema
	case DriverSQLite:
		stmts = sqliteSchema
	default:
		return fmt.Errorf("migrate: unsupported driver %q", db.DriverName())
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// MigrateDown rolls back the database schema.
// Use with caution: this will delete all data in the affected tables.
func MigrateDown(db *sqlx.DB) error {
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

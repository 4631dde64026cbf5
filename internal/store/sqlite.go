package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/deltagida/offerscan/internal/model"
)

// ErrOfferNotFound is returned when a source path has no stored offer.
var ErrOfferNotFound = eris.New("offer not found")

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS offers (
	id           TEXT PRIMARY KEY,
	source_path  TEXT NOT NULL UNIQUE,
	firm         TEXT NOT NULL DEFAULT '',
	subject      TEXT NOT NULL DEFAULT '',
	amount       REAL,
	currency     TEXT,
	extracted_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_offers_firm ON offers(firm);
CREATE INDEX IF NOT EXISTS idx_offers_extracted_at ON offers(extracted_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) UpsertOffer(ctx context.Context, rec *model.OfferRecord) (*model.OfferRecord, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO offers (id, source_path, firm, subject, amount, currency, extracted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(source_path) DO UPDATE SET
			firm = excluded.firm,
			subject = excluded.subject,
			amount = excluded.amount,
			currency = excluded.currency,
			extracted_at = excluded.extracted_at`,
		id, rec.SourcePath, rec.Firm, rec.Subject,
		nullFloat(rec.Amount), nullString(rec.Currency), now,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: upsert offer %s", rec.SourcePath)
	}

	return s.GetOffer(ctx, rec.SourcePath)
}

func (s *SQLiteStore) GetOffer(ctx context.Context, sourcePath string) (*model.OfferRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source_path, firm, subject, amount, currency, extracted_at
		 FROM offers WHERE source_path = ?`,
		sourcePath,
	)
	return scanOffer(row)
}

func (s *SQLiteStore) ListOffers(ctx context.Context, filter OfferFilter) ([]model.OfferRecord, error) {
	query := `SELECT id, source_path, firm, subject, amount, currency, extracted_at
		 FROM offers WHERE 1=1`
	var args []any

	if filter.Firm != "" {
		query += ` AND firm = ?`
		args = append(args, filter.Firm)
	}
	if filter.Currency != "" {
		query += ` AND currency = ?`
		args = append(args, filter.Currency)
	}
	query += ` ORDER BY extracted_at DESC`

	// Limit < 0 means unbounded (exports); 0 falls back to a page of 100.
	limit := filter.Limit
	if limit == 0 {
		limit = 100
	}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	} else if filter.Offset > 0 {
		// SQLite requires a LIMIT clause before OFFSET; -1 means unbounded.
		query += ` LIMIT -1`
	}

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list offers")
	}
	defer rows.Close()

	var offers []model.OfferRecord
	for rows.Next() {
		r, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, *r)
	}
	return offers, eris.Wrap(rows.Err(), "sqlite: list offers iterate")
}

func (s *SQLiteStore) DeleteOffer(ctx context.Context, sourcePath string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM offers WHERE source_path = ?`, sourcePath)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete offer %s", sourcePath)
	}
	return checkRowsAffected(res, "offer", sourcePath)
}

func (s *SQLiteStore) Summarize(ctx context.Context) ([]model.OfferSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT firm, subject, COALESCE(SUM(amount), 0), COUNT(*)
		 FROM offers GROUP BY firm, subject ORDER BY firm, subject`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: summarize")
	}
	defer rows.Close()

	var sums []model.OfferSummary
	for rows.Next() {
		var s model.OfferSummary
		if err := rows.Scan(&s.Firm, &s.Subject, &s.Total, &s.Count); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan summary")
		}
		sums = append(sums, s)
	}
	return sums, eris.Wrap(rows.Err(), "sqlite: summarize iterate")
}

// helpers

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Errorf("%s not found: %s", entity, id)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanOffer(row scannable) (*model.OfferRecord, error) {
	var r model.OfferRecord
	var amount sql.NullFloat64
	var currency sql.NullString

	err := row.Scan(&r.ID, &r.SourcePath, &r.Firm, &r.Subject, &amount, &currency, &r.ExtractedAt)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, eris.Wrap(err, "store: scan offer")
	}

	if amount.Valid {
		v := amount.Float64
		r.Amount = &v
	}
	if currency.Valid {
		r.Currency = currency.String
	}
	return &r, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

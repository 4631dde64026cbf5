package store

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/deltagida/offerscan/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses; pgxmock satisfies it.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresWithPool wraps an existing pool; used by tests.
func NewPostgresWithPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS offers (
	id           TEXT PRIMARY KEY,
	source_path  TEXT NOT NULL UNIQUE,
	firm         TEXT NOT NULL DEFAULT '',
	subject      TEXT NOT NULL DEFAULT '',
	amount       DOUBLE PRECISION,
	currency     TEXT,
	extracted_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_offers_firm ON offers(firm);
CREATE INDEX IF NOT EXISTS idx_offers_extracted_at ON offers(extracted_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) UpsertOffer(ctx context.Context, rec *model.OfferRecord) (*model.OfferRecord, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO offers (id, source_path, firm, subject, amount, currency, extracted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (source_path) DO UPDATE SET
			firm = excluded.firm,
			subject = excluded.subject,
			amount = excluded.amount,
			currency = excluded.currency,
			extracted_at = excluded.extracted_at`,
		id, rec.SourcePath, rec.Firm, rec.Subject,
		nullFloat(rec.Amount), nullString(rec.Currency), now,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: upsert offer %s", rec.SourcePath)
	}

	return s.GetOffer(ctx, rec.SourcePath)
}

func (s *PostgresStore) GetOffer(ctx context.Context, sourcePath string) (*model.OfferRecord, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, source_path, firm, subject, amount, currency, extracted_at
		 FROM offers WHERE source_path = $1`,
		sourcePath,
	)
	return scanOffer(row)
}

func (s *PostgresStore) ListOffers(ctx context.Context, filter OfferFilter) ([]model.OfferRecord, error) {
	query := `SELECT id, source_path, firm, subject, amount, currency, extracted_at
		 FROM offers WHERE 1=1`
	var args []any

	if filter.Firm != "" {
		args = append(args, filter.Firm)
		query += ` AND firm = ` + placeholder(len(args))
	}
	if filter.Currency != "" {
		args = append(args, filter.Currency)
		query += ` AND currency = ` + placeholder(len(args))
	}
	query += ` ORDER BY extracted_at DESC`

	limit := filter.Limit
	if limit == 0 {
		limit = 100
	}
	if limit > 0 {
		args = append(args, limit)
		query += ` LIMIT ` + placeholder(len(args))
	}

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET ` + placeholder(len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list offers")
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
	return offers, eris.Wrap(rows.Err(), "postgres: list offers iterate")
}

func (s *PostgresStore) DeleteOffer(ctx context.Context, sourcePath string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM offers WHERE source_path = $1`, sourcePath)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete offer %s", sourcePath)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("offer not found: %s", sourcePath)
	}
	return nil
}

func (s *PostgresStore) Summarize(ctx context.Context) ([]model.OfferSummary, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT firm, subject, COALESCE(SUM(amount), 0), COUNT(*)
		 FROM offers GROUP BY firm, subject ORDER BY firm, subject`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: summarize")
	}
	defer rows.Close()

	var sums []model.OfferSummary
	for rows.Next() {
		var s model.OfferSummary
		if err := rows.Scan(&s.Firm, &s.Subject, &s.Total, &s.Count); err != nil {
			return nil, eris.Wrap(err, "postgres: scan summary")
		}
		sums = append(sums, s)
	}
	return sums, eris.Wrap(rows.Err(), "postgres: summarize iterate")
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

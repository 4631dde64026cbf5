package store

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltagida/offerscan/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	return NewPostgresWithPool(mock), mock
}

func offerRowColumns() []string {
	return []string{"id", "source_path", "firm", "subject", "amount", "currency", "extracted_at"}
}

func TestPostgres_GetOffer(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	amount := 1234.56
	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, source_path, firm, subject, amount, currency, extracted_at`).
		WithArgs("/in/a.pdf").
		WillReturnRows(pgxmock.NewRows(offerRowColumns()).
			AddRow("id-1", "/in/a.pdf", "Acme", "Soya", amount, "EUR", now))

	got, err := s.GetOffer(context.Background(), "/in/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, "Acme", got.Firm)
	require.NotNil(t, got.Amount)
	assert.InDelta(t, 1234.56, *got.Amount, 0.001)
	assert.Equal(t, "EUR", got.Currency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetOffer_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, source_path`).
		WithArgs("/nope.pdf").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetOffer(context.Background(), "/nope.pdf")
	assert.ErrorIs(t, err, ErrOfferNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpsertOffer(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	amount := 500.0
	now := time.Now().UTC()
	mock.ExpectExec(`ON CONFLICT \(source_path\) DO UPDATE SET`).
		WithArgs(pgxmock.AnyArg(), "/in/a.pdf", "Acme", "Soya", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(`SELECT id, source_path`).
		WithArgs("/in/a.pdf").
		WillReturnRows(pgxmock.NewRows(offerRowColumns()).
			AddRow("id-1", "/in/a.pdf", "Acme", "Soya", amount, "TL", now))

	got, err := s.UpsertOffer(context.Background(), &model.OfferRecord{
		SourcePath: "/in/a.pdf", Firm: "Acme", Subject: "Soya", Amount: &amount, Currency: "TL",
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListOffers_Filters(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`FROM offers WHERE 1=1 AND firm = \$1 AND currency = \$2 ORDER BY extracted_at DESC LIMIT \$3`).
		WithArgs("Acme", "TL", 100).
		WillReturnRows(pgxmock.NewRows(offerRowColumns()).
			AddRow("id-1", "/in/a.pdf", "Acme", "Soya", nil, nil, now))

	offers, err := s.ListOffers(context.Background(), OfferFilter{Firm: "Acme", Currency: "TL"})
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Nil(t, offers[0].Amount)
	assert.Empty(t, offers[0].Currency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListOffers_UnboundedSkipsLimit(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`FROM offers WHERE 1=1 ORDER BY extracted_at DESC$`).
		WillReturnRows(pgxmock.NewRows(offerRowColumns()))

	offers, err := s.ListOffers(context.Background(), OfferFilter{Limit: -1})
	require.NoError(t, err)
	assert.Empty(t, offers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_DeleteOffer(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`DELETE FROM offers WHERE source_path = \$1`).
		WithArgs("/in/a.pdf").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, s.DeleteOffer(context.Background(), "/in/a.pdf"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_DeleteOffer_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`DELETE FROM offers`).
		WithArgs("/nope.pdf").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := s.DeleteOffer(context.Background(), "/nope.pdf")
	assert.ErrorContains(t, err, "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Summarize(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT firm, subject, COALESCE\(SUM\(amount\), 0\), COUNT\(\*\)`).
		WillReturnRows(pgxmock.NewRows([]string{"firm", "subject", "total", "count"}).
			AddRow("Acme", "Soya", 250.0, 2).
			AddRow("Beta", "Mısır", 0.0, 1))

	sums, err := s.Summarize(context.Background())
	require.NoError(t, err)
	require.Len(t, sums, 2)
	assert.Equal(t, model.OfferSummary{Firm: "Acme", Subject: "Soya", Total: 250, Count: 2}, sums[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS offers`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

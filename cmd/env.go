package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/deltagida/offerscan/internal/extract"
	"github.com/deltagida/offerscan/internal/pdftext"
	"github.com/deltagida/offerscan/internal/scan"
	"github.com/deltagida/offerscan/internal/store"
)

// env holds the initialized store, parser and page-text extractor shared by
// the scan/list/summary/export/serve commands.
type env struct {
	Store     store.Store
	Parser    *extract.Parser
	Extractor pdftext.Extractor
}

// Close releases resources held by the environment.
func (e *env) Close() {
	if e.Store != nil {
		_ = e.Store.Close()
	}
}

// initEnv sets up the store (migrated), the compiled parser and the page
// text provider. Callers should defer env.Close().
func initEnv(ctx context.Context) (*env, error) {
	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}

	opts, err := cfg.ExtractOptions()
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	parser, err := extract.New(opts, traceObserver())
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	extractor, err := pdftext.New(cfg.PDF)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	return &env{Store: st, Parser: parser, Extractor: extractor}, nil
}

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite", "":
		return store.NewSQLite(cfg.Store.DatabaseURL)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, &store.PoolConfig{
			MaxConns: cfg.Store.MaxConns,
			MinConns: cfg.Store.MinConns,
		})
	default:
		return nil, eris.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// traceObserver logs extraction cascade events at debug level.
func traceObserver() extract.Observer {
	return func(ev extract.Event) {
		if ev.Strategy == extract.StrategyClassifier {
			zap.L().Debug("document rejected",
				zap.String("document", ev.Source),
				zap.String("reason", ev.Reason),
			)
			return
		}
		zap.L().Debug("field extracted",
			zap.String("document", ev.Source),
			zap.String("field", ev.Field),
			zap.String("strategy", ev.Strategy),
			zap.Int("page", ev.Page),
		)
	}
}

func newRunner(e *env) *scan.Runner {
	return &scan.Runner{
		Extractor:   e.Extractor,
		Parser:      e.Parser,
		Store:       e.Store,
		Concurrency: cfg.Scan.Concurrency,
	}
}

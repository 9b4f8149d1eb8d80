package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quotegen/quotegen/internal/logging"
	"github.com/quotegen/quotegen/internal/store"
)

// Opener connects to a document store. store.Open satisfies it.
type Opener func(ctx context.Context, connectionURL, database string) (store.Store, error)

// Execute opens the store, seeds it and, when verify is set, checks the
// result. The store is closed on every path once it has been opened; a
// close failure is joined onto the returned error.
func Execute(ctx context.Context, open Opener, connectionURL, database string, verify bool, opts ...Option) (res *Result, stats *Stats, err error) {
	st, err := open(ctx, connectionURL, database)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close store: %w", cerr))
		}
	}()

	s := New(st, opts...)
	s.logger.Info("connected to store",
		slog.String("database_url", logging.RedactURL(connectionURL)),
		slog.String("db_name", database),
	)

	if res, err = s.Run(ctx); err != nil {
		return res, nil, err
	}
	if !verify {
		return res, nil, nil
	}

	stats, err = s.Verify(ctx)
	return res, stats, err
}

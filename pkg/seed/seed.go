// Package seed reads the crop record dataset the in-memory store starts
// from. A dataset may be split over several sources of different formats;
// they are read concurrently and concatenated in the order given.
package seed

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"farmtrack/database"
	"farmtrack/entities"
	"farmtrack/pkg/apperr"
	"farmtrack/pkg/logger"
)

type reader func(ctx context.Context, src string) ([]entities.CropRecord, error)

// Load reads every source and returns the normalized records. Any failure
// is reported as an UpstreamUnavailableError naming the source.
func Load(ctx context.Context, log *logger.Logger, sources ...string) ([]entities.CropRecord, error) {
	if len(sources) == 0 {
		return nil, apperr.Upstream("", errors.New("no seed sources configured"))
	}

	parts := make([][]entities.CropRecord, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			read, err := readerFor(src)
			if err != nil {
				return apperr.Upstream(Redact(src), err)
			}
			if err := ctx.Err(); err != nil {
				return apperr.Upstream(Redact(src), err)
			}
			recs, err := read(ctx, src)
			if err != nil {
				return apperr.Upstream(Redact(src), err)
			}
			parts[i] = recs
			log.Debug("seed source read", "source", Redact(src), "records", len(recs))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []entities.CropRecord
	for _, p := range parts {
		for _, r := range p {
			out = append(out, entities.Normalize(r))
		}
	}
	log.Info("seed loaded", "sources", len(sources), "records", len(out))
	return out, nil
}

func readerFor(src string) (reader, error) {
	if database.IsPostgres(src) {
		return readDB, nil
	}
	switch strings.ToLower(filepath.Ext(src)) {
	case ".json":
		return readJSON, nil
	case ".yaml", ".yml":
		return readYAML, nil
	case ".csv":
		return readCSV, nil
	case ".xlsx":
		return readXLSX, nil
	case ".db", ".sqlite", ".sqlite3":
		return readDB, nil
	}
	return nil, fmt.Errorf("unsupported seed format %q", filepath.Ext(src))
}

// Redact hides the password of a database URL so sources can be logged.
func Redact(src string) string {
	if !database.IsPostgres(src) {
		return src
	}
	u, err := url.Parse(src)
	if err != nil {
		return "postgres://(unparseable)"
	}
	return u.Redacted()
}

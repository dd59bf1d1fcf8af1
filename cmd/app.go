package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/ingestd/catalogsync/config"
	"github.com/ingestd/catalogsync/pkg/catalog"
	"github.com/ingestd/catalogsync/pkg/ingesterr"
	ingestio "github.com/ingestd/catalogsync/pkg/io"
	"github.com/ingestd/catalogsync/pkg/mediaserver"
	"github.com/ingestd/catalogsync/pkg/pathmap"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/model"
	"github.com/ingestd/catalogsync/pkg/validate"
)

// buildCatalog reads config and wires the façade in the dependency order
// SPEC_FULL.md §4.8 requires: Store, then PathMapper/Validator/ErrorHandler
// on top of it, then the façade itself. The Orchestrator is built lazily
// by the façade, once per synced server.
func buildCatalog() (*catalog.Catalog, error) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		return nil, fmt.Errorf("opening storage at %q: %w", cfg.Storage.FilePath, err)
	}

	mapper := pathmap.New(store, cfg.Validate.CaseInsensitive)
	validator := validate.New(mapper, &ingestio.MediaFileSystem{}, cfg.Validate.ProbeBinary, cfg.Validate.ProbeTimeout, validate.WithMaxConcurrency(cfg.Validate.MaxConcurrency))
	errs := ingesterr.New()

	newClient := func(server *model.Servers) mediaserver.ExternalClient {
		return mediaserver.New(server.BaseURL, server.Token, mediaserver.WithTimeout(cfg.Source.Timeout))
	}

	return catalog.New(store, mapper, validator, errs, newClient,
		catalog.WithBatchSize(cfg.Sync.BatchSize),
		catalog.WithProgressInterval(cfg.Sync.ProgressInterval),
	), nil
}

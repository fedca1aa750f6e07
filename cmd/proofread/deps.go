package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"lexis-hq/proofread/pkg/check"
	"lexis-hq/proofread/pkg/config"
	"lexis-hq/proofread/pkg/engine"
)

// loadDictionary loads the curated dictionary plus the optional extra
// word list. It runs before the listener opens.
func loadDictionary(cfg *config.EngineConfig, logger *slog.Logger) (*engine.Dictionary, engine.Dialect, error) {
	dialect, err := engine.ParseDialect(cfg.Dialect)
	if err != nil {
		return nil, dialect, err
	}

	logger.Info("loading dictionary",
		"dialect", dialect.String(),
		"extra_words_path", cfg.ExtraWordsPath,
	)

	var extra []io.Reader
	if cfg.ExtraWordsPath != "" {
		f, err := os.Open(cfg.ExtraWordsPath)
		if err != nil {
			return nil, dialect, fmt.Errorf("failed to open extra words: %w", err)
		}
		defer f.Close()
		extra = append(extra, f)
	}

	dict, err := engine.LoadCurated(extra...)
	if err != nil {
		return nil, dialect, fmt.Errorf("failed to load dictionary: %w", err)
	}

	logger.Info("dictionary loaded", "words", dict.Len())
	return dict, dialect, nil
}

// newService builds the check service shared by run and check.
func newService(cfg *config.Config, logger *slog.Logger) (*check.Service, *engine.Dictionary, error) {
	dict, dialect, err := loadDictionary(&cfg.Engine, logger)
	if err != nil {
		return nil, nil, err
	}

	service := check.NewService(
		check.NewAnalyzer(dict, dialect),
		check.WithTimeout(cfg.Server.CheckTimeout),
		check.WithLogger(logger),
	)
	return service, dict, nil
}

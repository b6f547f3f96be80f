package main

import (
	"log/slog"
	"strings"
	"sync"

	"tidy/internal/categories"
	"tidy/internal/config"
	"tidy/internal/history"
	"tidy/internal/logging"
	"tidy/internal/organize"
	"tidy/internal/scan"
)

// commandContext carries lazily-initialized shared state across subcommands.
type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	logPath    string
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger opens the per-run log (stdout + timestamped file) once per
// process and prunes logs past the retention window.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, logPath, err := logging.NewRunLogger(cfg)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
		c.logPath = logPath
		logging.CleanupOldLogs(logger, cfg.Paths.LogDir, cfg.Logging.RetentionDays, logPath)
	})
	return c.logger, c.loggerErr
}

// runtime bundles the collaborators one invocation needs.
type runtime struct {
	cfg       *config.Config
	logger    *slog.Logger
	table     *categories.Table
	organizer *organize.Organizer
	store     *history.Store
}

func (c *commandContext) newRuntime() (*runtime, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	table := categories.Load(cfg.Paths.CategoriesFile, logger)

	var (
		store *history.Store
		sink  organize.Sink
	)
	if cfg.History.Enabled {
		store, err = history.Open(cfg, logger)
		if err != nil {
			// History is an extra; a broken database must not block organizing.
			logger.Warn("operation history unavailable", logging.Error(err))
			store = nil
		} else {
			sink = store
		}
	}

	return &runtime{
		cfg:       cfg,
		logger:    logger,
		table:     table,
		organizer: organize.NewWithDependencies(cfg, table, logger, scan.New(), sink),
		store:     store,
	}, nil
}

func (r *runtime) Close() {
	if r.store != nil {
		_ = r.store.Close()
	}
}

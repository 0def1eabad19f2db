package cmd

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dbmrq/todo/internal/config"
	todoerrors "github.com/dbmrq/todo/internal/errors"
	"github.com/dbmrq/todo/internal/logging"
	"github.com/dbmrq/todo/internal/names"
	"github.com/dbmrq/todo/internal/render"
	"github.com/dbmrq/todo/internal/task"
)

// now is the clock used for deadlines and urgency; tests replace it.
var now = time.Now

// stdinIsTerminal reports whether the picker can be shown; tests replace it.
var stdinIsTerminal = func(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// env is everything a command needs, built from flags and configuration.
type env struct {
	cfg      *config.Config
	store    *task.Store
	manager  *task.Manager
	renderer *render.Renderer
	log      *logging.Logger
}

// loadEnv resolves the data directory, loads configuration, starts
// logging and loads the store. Callers must call close.
func loadEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if err := initLogging(cmd, cfg); err != nil {
		return nil, err
	}
	ctx := logging.WithCommand(cmd.Context(), cmd.Name())
	cmd.SetContext(ctx)
	log := logging.FromContext(ctx)
	log.Debug("configuration loaded", "data_dir", cfg.DataDir, "data_file", cfg.DataPath())

	store := task.NewStore(cfg.DataPath(), task.WithClock(now))
	if err := store.Load(); err != nil {
		_ = logging.CloseGlobal()
		return nil, err
	}
	log.Debug("store loaded", "entries", store.Count())

	return &env{
		cfg:      cfg,
		store:    store,
		manager:  task.NewManager(store, nil),
		renderer: render.New(cmd.OutOrStdout(), cfg.Color),
		log:      log,
	}, nil
}

// withNames loads the word list so the manager can name new entries.
func (e *env) withNames() error {
	words, err := names.LoadWords(e.cfg.WordsPath())
	if err != nil {
		return err
	}
	gen := names.NewGenerator(words, names.WithMaxAttempts(e.cfg.NameAttempts))
	e.manager = task.NewManager(e.store, gen)
	e.log.Debug("word list loaded", "words", gen.Len(), "max_attempts", gen.MaxAttempts())
	return nil
}

// list prints every entry.
func (e *env) list() error {
	return e.renderer.List(e.store.Entries(), now())
}

// save writes the store back to disk.
func (e *env) save() error {
	if err := e.manager.Save(); err != nil {
		return err
	}
	e.log.Debug("store saved", "path", e.store.Path(), "entries", e.store.Count())
	return nil
}

func (e *env) close() {
	_ = logging.CloseGlobal()
}

// loadConfig builds the configuration from --data-dir, --config, --color
// and the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dataDirFlag, _ := cmd.Flags().GetString("data-dir")
	configFlag, _ := cmd.Flags().GetString("config")
	colorFlag, _ := cmd.Flags().GetString("color")

	dataDir, err := config.ResolveDataDir(dataDirFlag)
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	if configFlag != "" {
		cfg, err = config.Load(configFlag)
		if err == nil {
			cfg.DataDir = dataDir
		}
	} else {
		cfg, err = config.LoadFromDir(dataDir)
	}
	if err != nil {
		return nil, err
	}

	if colorFlag != "" {
		mode := config.ColorMode(colorFlag)
		switch mode {
		case config.ColorAuto, config.ColorAlways, config.ColorNever:
			cfg.Color = mode
		default:
			return nil, todoerrors.ConfigValidationError("color", "must be 'auto', 'always', or 'never'", config.ValidColorModes).
				WithDetails("flag", "--color")
		}
	}

	return cfg, nil
}

// initLogging starts the global logger. --verbose adds debug output on stderr.
func initLogging(cmd *cobra.Command, cfg *config.Config) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return todoerrors.ConfigValidationError("log.level", err.Error(), config.ValidLogLevels)
	}
	if verbose {
		level = logging.LevelDebug
	}

	logConfig := &logging.Config{
		Level:         level,
		MaxLogFiles:   cfg.Log.MaxFiles,
		MaxLogAge:     cfg.Log.MaxAge,
		Console:       verbose,
		ConsoleWriter: cmd.ErrOrStderr(),
	}
	if cfg.Log.File {
		logConfig.LogDir = cfg.LogDir()
	}

	if err := logging.InitGlobal(logConfig); err != nil {
		// Non-fatal: carry on without a log file
		cmd.PrintErrf("Warning: failed to initialize logging: %v\n", err)
		logConfig.LogDir = ""
		return logging.InitGlobal(logConfig)
	}
	return nil
}

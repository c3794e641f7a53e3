package main

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/innertune/internal/innertube"
	"github.com/desertthunder/innertune/internal/session"
	"github.com/desertthunder/innertune/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for
// each command action.
type Runner struct {
	config  *shared.Config
	session *session.Context
	client  *innertube.Client
	logger  *log.Logger
	output  io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	Session *session.Context
	Client  *innertube.Client
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Session == nil {
		opts.Session = sessionFromConfig(opts.Config)
	}
	if opts.Client == nil {
		opts.Client = clientFromConfig(opts.Config, opts.Session, opts.Logger)
	}

	return &Runner{
		config:  opts.Config,
		session: opts.Session,
		client:  opts.Client,
		logger:  opts.Logger,
		output:  opts.Output,
	}
}

// sessionFromConfig builds the process session. The visitor token starts
// empty; the upstream issues one on the first response and the transport
// captures it.
func sessionFromConfig(config *shared.Config) *session.Context {
	return session.New(
		session.Locale{HL: config.Locale.HL, GL: config.Locale.GL},
		session.Client{
			Name:      config.Client.Name,
			Version:   config.Client.Version,
			UserAgent: config.Client.UserAgent,
		},
	)
}

func clientFromConfig(config *shared.Config, sess *session.Context, logger *log.Logger) *innertube.Client {
	return innertube.New(innertube.Opts{
		Session:    sess,
		Logger:     logger,
		Timeout:    secondsOrZero(config.Transport.TimeoutSeconds),
		MaxRetries: config.Transport.MaxRetries,
		RateLimit:  config.Transport.RateLimit,
		MaxPages:   config.Paging.MaxPages,
	})
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, searchCommand, browseCommand, queueCommand, cacheCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// openCache opens the local entity cache configured in [shared.CacheConfig].
func (r *Runner) openCache() (*sql.DB, error) {
	db, err := shared.NewDatabase(r.config.Cache.Path)
	if err != nil {
		return nil, err
	}
	shared.ConfigureDatabase(db, r.config.Cache.MaxOpenConns, r.config.Cache.MaxIdleConns)
	return db, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	return r.writePlain(format+"\n", args...)
}

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/outcome/pkg/config"
	"github.com/dmitrymomot/outcome/pkg/environment"
	"github.com/dmitrymomot/outcome/pkg/logger"
	"github.com/dmitrymomot/outcome/pkg/result"
)

var errFailedOutcome = errors.New("outcome is a failure")

// Config is read from the environment and an optional .env file. Flags win
// over these values.
type Config struct {
	Env        string `env:"OUTCOME_ENV" envDefault:"development"`
	LogLevel   string `env:"OUTCOME_LOG_LEVEL" envDefault:"warn"`
	LogFormat  string `env:"OUTCOME_LOG_FORMAT" envDefault:"text"`
	JSONCase   string `env:"OUTCOME_JSON_CASE" envDefault:"camel"`
	JSONIndent string `env:"OUTCOME_JSON_INDENT"`
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	envFile   string
	logLevel  string
	logFormat string
	fieldCase string
	indent    string
	yamlOut   bool

	cfg   Config
	log   *slog.Logger
	codec result.Codec
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "outcome",
		Short:         "Inspect, reformat and combine serialized outcomes",
		Version:       fmt.Sprintf("%s (commit: %s)", Version, CommitSHA),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "Load environment variables from this file")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format (text, json)")
	flags.StringVar(&a.fieldCase, "case", "", "Field name case of the output (camel, pascal, snake)")
	flags.StringVar(&a.indent, "indent", "", "Indent JSON output with this string")
	flags.BoolVar(&a.yamlOut, "yaml", false, "Write YAML instead of JSON")

	cmd.AddCommand(newFmtCmd(a), newCheckCmd(a), newCombineCmd(a))
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadFiles(nonEmpty(a.envFile)...); err != nil {
		return err
	}
	// Each invocation reads the environment as it is now.
	config.Reset()
	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	level := firstNonEmpty(a.logLevel, a.cfg.LogLevel)
	format := logger.Format(firstNonEmpty(a.logFormat, a.cfg.LogFormat))
	if format != logger.FormatJSON && format != logger.FormatText {
		return fmt.Errorf("invalid log format %q", format)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	a.log = logger.New(
		logger.WithEnvironment(a.cfg.Env, "outcome"),
		logger.WithOutput(a.stderr),
		logger.WithLevel(lvl),
		logger.WithFormat(format),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	).With(logger.Command(cmd.Name()))

	fc, err := result.ParseFieldCase(firstNonEmpty(a.fieldCase, a.cfg.JSONCase))
	if err != nil {
		return err
	}
	a.codec = result.Codec{Case: fc, Indent: firstNonEmpty(a.indent, a.cfg.JSONIndent)}

	cmd.SetContext(environment.WithContext(cmd.Context(), environment.Parse(a.cfg.Env)))
	return nil
}

// read returns the contents of path, or of stdin when path is "" or "-".
func (a *app) read(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(a.stdin)
	}
	return os.ReadFile(path)
}

// decode accepts the canonical shape as JSON or YAML in any field case.
func (a *app) decode(ctx context.Context, path string) (result.Result, error) {
	data, err := a.read(path)
	if err != nil {
		return result.Result{}, err
	}
	var r result.Result
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		r, err = a.codec.Unmarshal(data)
	} else {
		r, err = a.codec.UnmarshalYAML(data)
	}
	if err != nil {
		return result.Result{}, fmt.Errorf("%s: %w", displayPath(path), err)
	}
	a.log.DebugContext(ctx, "decoded outcome",
		logger.File(displayPath(path)),
		logger.FailureType(r.FailureType()),
		logger.ResultType(r.ResultType()),
	)
	return r, nil
}

func (a *app) write(r result.Result) error {
	var (
		out []byte
		err error
	)
	if a.yamlOut {
		out, err = a.codec.MarshalYAML(r)
	} else {
		out, err = a.codec.Marshal(r)
		out = append(out, '\n')
	}
	if err != nil {
		return err
	}
	_, err = a.stdout.Write(out)
	return err
}

func displayPath(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}
	return path
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

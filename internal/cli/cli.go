package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/specialistvlad/paramgrid/internal/app"
	"github.com/specialistvlad/paramgrid/internal/config"
	"github.com/specialistvlad/paramgrid/internal/hcl_adapter"
	"github.com/specialistvlad/paramgrid/internal/validation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// ExitUsage is returned for invalid flags, arguments or commands.
	ExitUsage = 2
	// ExitInvalid is returned when exported references do not resolve.
	ExitInvalid = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

var (
	logLevels   = []string{"debug", "info", "warn", "error"}
	logFormats  = []string{"text", "json"}
	outFormats  = []string{"text", "json", "yaml"}
	exportExtra = "hcl"
)

// command holds what every subcommand needs: its settings source, the
// loader and where logs go.
type command struct {
	v      *viper.Viper
	loader config.Loader
	logW   io.Writer
	ran    bool
}

// Execute runs the command line described by args. Command output goes to
// outW and log records to logW.
func Execute(args []string, outW, logW io.Writer) error {
	return execute(args, outW, logW, hcl_adapter.NewLoader())
}

func execute(args []string, outW, logW io.Writer, loader config.Loader) error {
	c := &command{v: viper.New(), loader: loader, logW: logW}
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetOut(outW)
	root.SetErr(outW)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if !c.ran {
		// Cobra rejected the command line before any command ran.
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	return err
}

func (c *command) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "paramgrid",
		Short: "Inspect and export the parameters of a node pipeline",
		Long: `paramgrid loads HCL pipeline files and works with their parameters:
every parameter gets a unique global key, and exported groups expose selected
parameters through forwarding references.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	})

	flags := root.PersistentFlags()
	flags.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringP("format", "o", "text", "Output format. Options: 'text', 'json', 'yaml' ('hcl' for export).")
	for _, name := range []string{"log-level", "log-format", "format"} {
		// Lookup cannot fail for a flag registered above.
		_ = c.v.BindPFlag(name, flags.Lookup(name))
	}
	c.v.SetEnvPrefix("PARAMGRID")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	root.AddCommand(c.keysCommand(), c.validateCommand(), c.exportCommand())
	return root
}

// pathArgs accepts pipeline paths as arguments, falling back to
// PARAMGRID_PATH.
func (c *command) pathArgs(_ *cobra.Command, args []string) error {
	if len(args) == 0 && len(c.v.GetStringSlice("path")) == 0 {
		return usageError("at least one pipeline path is required")
	}
	return nil
}

// load validates the shared settings and loads the pipeline.
func (c *command) load(args []string, formats ...string) (*app.App, string, error) {
	c.ran = true

	logLevel := strings.ToLower(c.v.GetString("log-level"))
	if !slices.Contains(logLevels, logLevel) {
		return nil, "", usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	logFormat := strings.ToLower(c.v.GetString("log-format"))
	if !slices.Contains(logFormats, logFormat) {
		return nil, "", usageError("invalid log-format: must be 'text' or 'json'")
	}
	format := strings.ToLower(c.v.GetString("format"))
	if !slices.Contains(outFormats, format) && !slices.Contains(formats, format) {
		return nil, "", usageError("invalid format '%s': must be one of %s", format, strings.Join(append(slices.Clone(outFormats), formats...), ", "))
	}

	paths := args
	if len(paths) == 0 {
		paths = c.v.GetStringSlice("path")
	}
	cfg, err := app.NewConfig(app.Config{Paths: paths, LogFormat: logFormat, LogLevel: logLevel})
	if err != nil {
		return nil, "", usageError("%s", err.Error())
	}
	a, err := app.NewApp(c.logW, cfg, c.loader)
	if err != nil {
		return nil, "", err
	}
	return a, format, nil
}

func (c *command) keysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys PATH...",
		Short: "List the global key of every parameter",
		Args:  c.pathArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, format, err := c.load(args)
			if err != nil {
				return err
			}
			keys, keysErr := a.Keys(cmd.Context())
			if err := render(cmd.OutOrStdout(), format, keys, keysText(keys)); err != nil {
				return err
			}
			return keysErr
		},
	}
}

func (c *command) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate PATH...",
		Short: "Check that every exported reference resolves",
		Args:  c.pathArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, format, err := c.load(args)
			if err != nil {
				return err
			}
			report, reportErr := a.Validate(cmd.Context())
			if report == nil {
				return reportErr
			}
			out := validateOutput{Valid: report.IsValid(), Entries: report.Entries()}
			if out.Entries == nil {
				out.Entries = []validation.Entry{}
			}
			if err := render(cmd.OutOrStdout(), format, out, validateText(report)); err != nil {
				return err
			}
			if reportErr != nil {
				return reportErr
			}
			if !report.IsValid() {
				return &ExitError{Code: ExitInvalid, Message: report.Err().Error()}
			}
			return nil
		},
	}
}

func (c *command) exportCommand() *cobra.Command {
	var overrides map[string]string
	cmd := &cobra.Command{
		Use:   "export PATH...",
		Short: "Show the exported parameter surface",
		Long: `Show the exported parameter groups with the values they currently forward.
Use --set to write values through the exported parameters first, and
--format hcl to print the exported_parameters block.`,
		Args: c.pathArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, format, err := c.load(args, exportExtra)
			if err != nil {
				return err
			}
			if format == exportExtra {
				if len(overrides) > 0 {
					return usageError("--set cannot be combined with --format hcl")
				}
				_, err := cmd.OutOrStdout().Write(a.ExportHCL())
				return err
			}
			groups, err := a.Export(cmd.Context(), overrides)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, groups, exportText(groups))
		},
	}
	cmd.Flags().StringToStringVar(&overrides, "set", nil, "Write a value through an exported parameter before showing it (key=value).")
	return cmd
}

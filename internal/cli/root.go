// Package cli builds the guess command tree.
package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/guess/internal/version"
	"github.com/arthur-debert/guess/pkg/config"
	"github.com/arthur-debert/guess/pkg/dispatcher"
	"github.com/arthur-debert/guess/pkg/errors"
	"github.com/arthur-debert/guess/pkg/logging"
	"github.com/arthur-debert/guess/pkg/types"
	"github.com/arthur-debert/guess/pkg/ui"
)

// rootOptions holds the global flag values shared by every command
type rootOptions struct {
	verbosity int
	format    string
	as        string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "guess <value...>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New(errors.ErrInvalidInput, MsgErrNoInput)
			}
			forced := types.DomainNone
			if opts.as != "" {
				d, err := dispatcher.LookupDomain(opts.as)
				if err != nil {
					return err
				}
				forced = d
			}
			return opts.guess(cmd, args, forced)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)
	rootCmd.Flags().StringVar(&opts.as, "as", "", MsgFlagAs)
	_ = rootCmd.RegisterFlagCompletionFunc("as", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return dispatcher.DomainNames(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "domains", Title: MsgGroupDomains})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: MsgGroupMisc})
	rootCmd.SetHelpCommandGroupID("misc")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	for _, d := range types.Domains {
		rootCmd.AddCommand(newDomainCmd(opts, d))
	}
	rootCmd.AddCommand(newExamplesCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// resolveFormat picks the --format flag when given, else the configured default
func (o *rootOptions) resolveFormat(cmd *cobra.Command, cfg *config.Config) (ui.Format, error) {
	name := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		name = o.format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return ui.FormatAuto, fmt.Errorf(MsgErrFormat, err)
	}
	return format, nil
}

// guess dispatches the joined arguments and renders the outcome. Dispatch
// failures are rendered to stderr and come back wrapped as reported.
func (o *rootOptions) guess(cmd *cobra.Command, args []string, forced types.Domain) error {
	logger := logging.GetLogger("cli")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	format, err := o.resolveFormat(cmd, cfg)
	if err != nil {
		return err
	}

	raw := strings.Join(args, " ")
	logger.Debug().
		Str("input", raw).
		Str("forced", forced.Command()).
		Str("format", format.String()).
		Msg("Guessing")

	d := dispatcher.New(dispatcher.Options{Settings: cfg.Settings()})
	result, err := d.Dispatch(raw, forced)
	if err != nil {
		renderer, rerr := ui.NewRenderer(format, cmd.ErrOrStderr())
		if rerr != nil {
			return fmt.Errorf(MsgErrNewRenderer, rerr)
		}
		if rerr := renderer.RenderError(err); rerr != nil {
			return rerr
		}
		return reported{err: err}
	}

	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf(MsgErrNewRenderer, err)
	}
	return renderer.RenderResult(result)
}

// reported marks an error the command already printed
type reported struct {
	err error
}

func (r reported) Error() string { return r.err.Error() }

func (r reported) Unwrap() error { return r.err }

// IsReported reports whether err was already shown to the user
func IsReported(err error) bool {
	_, ok := err.(reported)
	return ok
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/guess/internal/version"
	"github.com/arthur-debert/guess/pkg/config"
	"github.com/arthur-debert/guess/pkg/dispatcher"
	"github.com/arthur-debert/guess/pkg/types"
	"github.com/arthur-debert/guess/pkg/ui"
	"github.com/arthur-debert/guess/pkg/ui/markdown"
)

func newDomainCmd(opts *rootOptions, d types.Domain) *cobra.Command {
	label := strings.ToLower(d.String())
	return &cobra.Command{
		Use:     d.Command() + " <value...>",
		Aliases: dispatcher.DomainAliases(d),
		Short:   fmt.Sprintf(MsgDomainShortFmt, label),
		Long:    fmt.Sprintf(MsgDomainLongFmt, label),
		GroupID: "domains",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.guess(cmd, args, d)
		},
	}
}

func newExamplesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "examples",
		Short:   MsgExamplesShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			format, err := opts.resolveFormat(cmd, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			content := markdown.Examples()
			if ui.Resolve(format, out) == ui.FormatTerminal && stdoutIsTerminal() {
				content = markdown.NewRenderer().Render(content)
			}
			_, err = io.WriteString(out, content)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat+"\n", version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

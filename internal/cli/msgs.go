package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Guess what a value means"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgExamplesShort   = "Show one example input per domain"
	MsgCompletionShort = "Generate shell completion script"
	MsgDomainShortFmt  = "Read the value as a %s"
	MsgDomainLongFmt   = "Read the value as a %s only and show every representation of it."

	// Group titles
	MsgGroupDomains = "DOMAINS:"
	MsgGroupMisc    = "MISC:"

	// Output
	MsgVersionFormat = "guess version %s\n  commit: %s\n  built:  %s"

	// Error messages
	MsgErrNoInput     = "no value given"
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrFormat      = "invalid --format: %w"
	MsgErrNewRenderer = "failed to create renderer: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format (auto, term, text, json, yaml, xml)"
	MsgFlagAs      = "Read the value as one domain, like the domain commands"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)

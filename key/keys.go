// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Analysis - these keys tune how observed resources are classified and reported.
const (
	AnalysisShowResources = "analysis.show_resources"
	AnalysisStrictIDs     = "analysis.strict_ids"
	AnalysisAskTitle      = "analysis.ask_title"
)

// Page collaborators - these keys describe the target site and where its title lives.
const (
	PageTargetPrefix  = "page.target_prefix"
	PageTitleSelector = "page.title_selector"
)

// Merge command - these keys govern the composed muxing invocation.
const (
	FFmpegBinary = "ffmpeg.binary"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern terminal output.
const (
	CliColored = "cli.colored"
)

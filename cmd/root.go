// Package cmd implements the command-line interface for cdarip.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cdarip/cdarip/analysis"
	"github.com/cdarip/cdarip/color"
	"github.com/cdarip/cdarip/constant"
	"github.com/cdarip/cdarip/icon"
	"github.com/cdarip/cdarip/key"
	"github.com/cdarip/cdarip/log"
	"github.com/cdarip/cdarip/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	addAnalyzeFlags(rootCmd)
}

// rootCmd analyzes a resource dump when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [resources]",
	Short: "Pick the best audio and video streams of a cda.pl page",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Pick the best audio and video streams of a cda.pl page"),
	Args:    cobra.MaximumNArgs(1),
	PreRun:  bindAnalyzeFlags,
	Example: analyzeExample,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		runAnalyze(cmd, args)
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))

	if errors.Is(err, analysis.ErrNoMedia) {
		_, _ = fmt.Fprintln(os.Stderr, style.Faint("Tip: "+analysis.Hint))
	}

	os.Exit(1)
}

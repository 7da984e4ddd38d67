package cmd

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/cdarip/cdarip/analysis"
	"github.com/cdarip/cdarip/constant"
	"github.com/cdarip/cdarip/ffmpeg"
	"github.com/cdarip/cdarip/filesystem"
	"github.com/cdarip/cdarip/key"
	"github.com/cdarip/cdarip/log"
	"github.com/cdarip/cdarip/page"
	"github.com/cdarip/cdarip/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const analyzeExample = `  cdarip analyze resources.har --page video.html
  cdarip analyze urls.txt --title "My Video" --json
  pbpaste | cdarip -t "My Video"`

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addAnalyzeFlags(analyzeCmd)
}

// analyzeCmd selects the best streams from a resource dump.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [resources]",
	Short: "Classify the resources a page loaded and select the best audio and video",
	Long: `Read the network resources a video page loaded and print the streams to download,
their file names and the ffmpeg command that merges them.

The resource dump may be a HAR export, the JSON output of
performance.getEntriesByType('resource') or a plain list with one URL per line.
Without an argument, or with "-", it is read from stdin.`,
	Aliases: []string{"a"},
	Args:    cobra.MaximumNArgs(1),
	Example: analyzeExample,
	PreRun:  bindAnalyzeFlags,
	Run:     runAnalyze,
}

func addAnalyzeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("title", "t", "", "Use this video title instead of reading it from the page")
	cmd.Flags().StringP("page", "p", "", "Saved HTML of the video page to read the title from")
	cmd.Flags().StringP("page-url", "u", "", "Address of the video page, checked against the supported site")
	cmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	cmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")
	cmd.Flags().BoolP("show-resources", "r", false, "List every classified media resource")
	cmd.Flags().Bool("strict", false, "Reject media names whose identifier is not hexadecimal")
	cmd.Flags().Bool("ask-title", true, "Prompt for a title when none was found on the page")

	cmd.MarkFlagsMutuallyExclusive("title", "page")
	lo.Must0(cmd.MarkFlagFilename("page", "html", "htm"))
	lo.Must0(cmd.MarkFlagFilename("output"))
}

// bindAnalyzeFlags binds the flags of whichever command runs, since root and analyze share them.
func bindAnalyzeFlags(cmd *cobra.Command, _ []string) {
	lo.Must0(viper.BindPFlag(key.AnalysisShowResources, cmd.Flags().Lookup("show-resources")))
	lo.Must0(viper.BindPFlag(key.AnalysisStrictIDs, cmd.Flags().Lookup("strict")))
	lo.Must0(viper.BindPFlag(key.AnalysisAskTitle, cmd.Flags().Lookup("ask-title")))
}

func runAnalyze(cmd *cobra.Command, args []string) {
	input := filesystem.Stdio
	if len(args) > 0 {
		input = args[0]
	}

	if pageURL := lo.Must(cmd.Flags().GetString("page-url")); pageURL != "" {
		handleErr(page.CheckTarget(pageURL, viper.GetString(key.PageTargetPrefix)))
	}

	urls, err := page.Load(input)
	handleErr(err)

	report := analysis.Analyze(urls, videoTitle(cmd), analysis.Options{
		Strict:   viper.GetBool(key.AnalysisStrictIDs),
		Composer: &ffmpeg.Composer{Binary: viper.GetString(key.FFmpegBinary)},
	})

	asJson := lo.Must(cmd.Flags().GetBool("json"))
	if !asJson {
		// scripts get the empty report, people get the hint
		handleErr(report.Err())
	}

	out, err := filesystem.Create(lo.Must(cmd.Flags().GetString("output")))
	handleErr(err)
	defer out.Close()

	if asJson {
		handleErr(report.WriteJSON(out))
		return
	}

	handleErr(report.WriteText(out, analysis.TextOptions{
		ShowResources: viper.GetBool(key.AnalysisShowResources),
		Width:         util.TerminalWidth(),
	}))
}

func videoTitle(cmd *cobra.Command) string {
	if cmd.Flags().Changed("title") {
		return lo.Must(cmd.Flags().GetString("title"))
	}

	title := constant.TitleNodeNotFound
	if path := lo.Must(cmd.Flags().GetString("page")); path != "" {
		title = page.LoadTitle(path, viper.GetString(key.PageTitleSelector))
	}

	if !isFallbackTitle(title) || !viper.GetBool(key.AnalysisAskTitle) || !util.IsInteractive() {
		return title
	}

	var answer string
	err := survey.AskOne(&survey.Input{
		Message: "Video title was not found. Enter it:",
		Default: title,
	}, &answer)
	if err != nil {
		log.Warnf("title prompt: %v", err)
		return title
	}

	return answer
}

func isFallbackTitle(title string) bool {
	return title == constant.TitleNodeNotFound || title == constant.TitleScriptFailed
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cdarip/cdarip/color"
	"github.com/cdarip/cdarip/resolution"
	"github.com/cdarip/cdarip/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(codesCmd)
	codesCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON array")
	codesCmd.Flags().BoolP("short", "s", false, "Print only the recognized codes, best first")
	codesCmd.MarkFlagsMutuallyExclusive("json", "short")
	codesCmd.SetOut(os.Stdout)
}

// codesCmd lists the resolution codes recognized in media file names.
var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List the resolution codes recognized in media file names",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(strings.Join(resolution.Codes(), "\n"))
			return
		}

		infos := resolution.All()

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(infos))
			return
		}

		for _, info := range infos {
			cmd.Printf(
				"%s %s %s\n",
				style.New().Bold(true).Foreground(color.Purple).Width(8).Render(info.Code),
				style.Fg(color.Yellow)(fmt.Sprintf("%-8s", info.Label)),
				style.Faint(fmt.Sprintf("rank %d", info.Rank)),
			)
		}
	},
}

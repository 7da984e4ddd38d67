package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/cdarip/cdarip/color"
	"github.com/cdarip/cdarip/constant"
	"github.com/cdarip/cdarip/icon"
	"github.com/cdarip/cdarip/key"
	"github.com/cdarip/cdarip/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd verifies that the muxer used in the merge command is installed.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the tool used by the merge command is installed",
	Run: func(cmd *cobra.Command, args []string) {
		binary := viper.GetString(key.FFmpegBinary)

		path, err := exec.LookPath(binary)
		if err != nil {
			fmt.Println(missingDependency(binary))
			handleErr(fmt.Errorf("%s not found in PATH", binary))
		}

		fmt.Printf("%s %s found at %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), binary, path)
	},
}

func missingDependency(dep string) string {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install ffmpeg"
	case constant.Linux:
		installCmd = "sudo apt install ffmpeg"
	case constant.Windows:
		installCmd = "scoop install ffmpeg"
	case constant.Android:
		installCmd = "pkg install ffmpeg"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.Red).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.Red).Render(fmt.Sprintf("%s Missing Dependency", icon.Get(icon.Warn)))
	body := fmt.Sprintf("'%s' was not found in your PATH.\nThe merge command will not run until it is installed.", dep)

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\nTo install it, try running:\n  %s", style.New().Foreground(color.Cyan).Bold(true).Render(installCmd))
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, suggestion))
}

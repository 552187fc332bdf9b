package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"storycoach/cmd/storycoach/cmd/analyze"
	"storycoach/cmd/storycoach/cmd/export"
	"storycoach/cmd/storycoach/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "storycoach",
	Short: "Analyze a recorded story: transcript, filler-word metrics and a structured review",
	Long: `Analyze a recorded story: transcript, filler-word metrics and a structured review.

- Finds the first audio file (mp3, m4a, wav, aac, mp4) in the input directory
- Transcribes it with the OpenAI Whisper API
- Counts words and filler words locally
- Asks a chat model for a structured storytelling review
- Persists everything into a per-run folder under data/`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(analyze.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

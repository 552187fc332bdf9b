package analyze

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"storycoach/internal/app"
	"storycoach/internal/config"
)

var (
	inputDir   string
	dataDir    string
	configFile string
)

func init() {
	Cmd.Flags().StringVarP(&inputDir, "inputDir", "i", "",
		"directory scanned for the audio file (default: paths.input from config, or the current directory)")
	Cmd.Flags().StringVarP(&dataDir, "dataDir", "d", "",
		"root directory for per-run workspaces (default: paths.data from config, or ./data)")
	Cmd.Flags().StringVarP(&configFile, "config", "c", "storycoach.yaml",
		"optional YAML config overriding models and the filler-word vocabulary")
}

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis on the first audio file found",
	Long: `Run the full analysis on the first audio file found

- The audio file is moved into the run's workspace under data/
- transcript.txt and analysis.json are written next to it
- The run is recorded in the history database for later export`,
	SilenceUsage: true,
	// RunE rather than Run with log.Fatal: the error path must unwind
	// normally so the deferred database close runs.
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if inputDir != "" {
			cfg.Paths.Input = inputDir
		}
		if dataDir != "" {
			cfg.Paths.Data = dataDir
		}

		apiKey, err := config.RequireAPIKey()
		if err != nil {
			return fmt.Errorf("missing credentials: %w", err)
		}

		a := app.InitializeAnalyzer(cfg, apiKey)
		defer a.Close()

		run, err := a.Do(context.Background(), cfg.Paths.Input)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}

		fmt.Printf("Analysis %s complete for '%s'\n", run.AnalysisID, run.Filename)
		return nil
	},
}

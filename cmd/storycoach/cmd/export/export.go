package export

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"storycoach/internal/app/export"
	"storycoach/internal/app/repository/sqlite"
)

var (
	dataDir        string
	outputFilePath string
)

func init() {
	Cmd.Flags().StringVarP(&dataDir, "dataDir", "d", "data", "root data directory holding the history database")
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the analysis run history to excel",
	Long: `Export the analysis run history to excel

- Exports every recorded run, failed runs included`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		db := sqlite.NewSQLiteDB(filepath.Join(dataDir, "storycoach.db"))
		defer db.Close()

		records, err := db.GetAll()
		if err != nil {
			return err
		}

		if err := export.ToExcel(records, outputFilePath); err != nil {
			return err
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
		return nil
	},
}

package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"storycoach/internal/app/model"
)

// ToExcel writes the run history to an xlsx file at outputFilePath.
func ToExcel(records []model.RunRecord, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Analysis Runs")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Analysis ID"
	headerRow.AddCell().Value = "File Name"
	headerRow.AddCell().Value = "Workspace"
	headerRow.AddCell().Value = "Word Count"
	headerRow.AddCell().Value = "Total Filler Words"
	headerRow.AddCell().Value = "Story Strength"
	headerRow.AddCell().Value = "Summary"
	headerRow.AddCell().Value = "Created At"
	headerRow.AddCell().Value = "Error Message"

	for _, r := range records {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(r.ID)
		row.AddCell().Value = r.AnalysisID
		row.AddCell().Value = r.FileName
		row.AddCell().Value = r.Workspace
		row.AddCell().Value = fmt.Sprint(r.WordCount)
		row.AddCell().Value = fmt.Sprint(r.TotalFillers)
		row.AddCell().Value = r.StoryStrength
		row.AddCell().Value = r.Summary
		row.AddCell().Value = r.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = r.ErrorMessage
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("save %s: %w", outputFilePath, err)
	}
	return nil
}

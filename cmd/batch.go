package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TurnbullEngineering/water-flow-forces/internal/as5100"
	"github.com/TurnbullEngineering/water-flow-forces/internal/dataset"
	"github.com/TurnbullEngineering/water-flow-forces/internal/forces"
)

var (
	batchParams paramFlags

	batchInput  string
	batchOutput string
	batchEvent  string
	batchSheet  string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Calculate design forces for every row of a flood-event spreadsheet",
	Long: `Process a flood-event spreadsheet and append the calculated forces to
each row.

The spreadsheet must carry, for the selected event, the columns
"<event> Event Peak Flood Depth", "<event> Event Peak Velocity" and
"<event> Event Scour" (wrapped header text is tolerated). Rows with
missing or non-numeric values in those columns are kept, with every
result column set to N/A.

Examples:
  # PMF event with default design parameters
  wff batch --input towers.xlsx --output results.xlsx --event PMF

  # 1% AEP event for a bored pile leg
  wff batch --input towers.xlsx --output results.xlsx --event "1% AEP" \
    --leg-type bored-pile --area 20 --pile-diameter 2.5`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchParams.register(batchCmd)

	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Input xlsx file [required]")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Output xlsx file [required]")
	batchCmd.Flags().StringVarP(&batchEvent, "event", "e", "PMF", "Flood event label, e.g. \"1% AEP\" or \"PMF\"")
	batchCmd.Flags().StringVar(&batchSheet, "sheet", "", "Sheet name (defaults to the first sheet)")

	batchCmd.MarkFlagRequired("input")
	batchCmd.MarkFlagRequired("output")
}

func runBatch(cmd *cobra.Command, args []string) error {
	log := zap.L()

	legType, err := batchParams.legTypeEnum()
	if err != nil {
		return err
	}
	batchParams.applyDefaults(cmd, cfg.Defaults, legType)

	leg, err := batchParams.geometry()
	if err != nil {
		return err
	}
	params, err := batchParams.loadParameters()
	if err != nil {
		return err
	}

	table, err := dataset.Read(batchInput, dataset.Options{SheetName: batchSheet})
	if err != nil {
		return err
	}
	log.Info("loaded flood event data",
		zap.String("input", batchInput),
		zap.String("event", batchEvent),
		zap.Int("rows", len(table.Records)))

	known := false
	for _, event := range as5100.FloodEvents {
		if event == batchEvent {
			known = true
			break
		}
	}
	if !known {
		log.Warn("event label is not a standard flood event", zap.String("event", batchEvent))
	}

	mapping := dataset.MappingFor(batchEvent)
	if err := table.RequireColumns(mapping); err != nil {
		return err
	}

	results, err := forces.EvaluateRecords(table.Records, mapping, leg, params)
	if err != nil {
		return err
	}

	notApplicable := 0
	for _, rec := range results {
		if rec["F1"] == forces.NotApplicable {
			notApplicable++
		}
	}

	headers := append(append([]string{}, table.Headers...), forces.ResultColumns...)
	if err := dataset.Write(batchOutput, headers, results); err != nil {
		return err
	}

	log.Info("batch evaluation complete",
		zap.String("output", batchOutput),
		zap.Int("rows", len(results)),
		zap.Int("not_applicable", notApplicable))
	fmt.Printf("Processed %d rows (%d not applicable) -> %s\n", len(results), notApplicable, batchOutput)

	return nil
}

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edocta/consulta-vehicular/dto"
	"github.com/edocta/consulta-vehicular/utils/statement"
)

var parsePlate string

func init() {
	parseCmd.Flags().StringVar(&parsePlate, "placa", "", "Plate to stamp on the parsed record.")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <file> [--placa <placa>]",
	Short: "Parses a saved statement page text dump without touching the portal.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		result := statement.ParseText(dto.NormalizePlate(parsePlate), string(raw))
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), result)
		}
		renderResult(cmd.OutOrStdout(), result)
		return nil
	},
}

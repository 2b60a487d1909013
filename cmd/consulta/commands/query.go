package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edocta/consulta-vehicular/client"
	"github.com/edocta/consulta-vehicular/config"
	"github.com/edocta/consulta-vehicular/service"
)

func init() {
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query <placa>",
	Short: "Runs a live statement query against the portal.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		svc := service.NewConsultaService(client.NewPortalClient(cfg), cfg)
		resp, err := svc.Consultar(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), resp)
		}
		renderResult(cmd.OutOrStdout(), resp.QueryResult)
		fmt.Fprintf(cmd.OutOrStdout(), "Tiempo de consulta: %s\nConsultado el: %s\nId: %s\n",
			resp.Elapsed, resp.QueriedAt, resp.Metadata.QueryID)
		return nil
	},
}

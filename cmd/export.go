package main

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jocross/leadboard/internal/analytics"
	"github.com/jocross/leadboard/internal/report"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dashboard views as an XLSX workbook",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		leads, err := st.FetchAll(ctx)
		if err != nil {
			return eris.Wrap(err, "export: fetch leads")
		}

		snap := analytics.BuildSnapshot(leads, time.Now())
		if err := report.Write(exportOut, snap, leads); err != nil {
			return eris.Wrap(err, "export: write report")
		}

		zap.L().Info("export complete",
			zap.Int("leads", len(leads)),
			zap.String("out", exportOut),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "leadboard.xlsx", "output path")
	rootCmd.AddCommand(exportCmd)
}

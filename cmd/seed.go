package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jocross/leadboard/internal/seeder"
	"github.com/jocross/leadboard/internal/synth"
)

var (
	seedCount  int
	seedDryRun bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all stored leads with synthetic data",
	Long:  "Generates plausible fake leads, deletes every stored lead and inserts the new batch in chunks. The reseed is not atomic: a failure partway through leaves the store partially seeded.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		count := seedCount
		if count <= 0 {
			count = cfg.Seed.Count
		}

		opts := []synth.Option{}
		if cfg.Seed.VocabPath != "" {
			vocab, err := synth.LoadVocab(cfg.Seed.VocabPath)
			if err != nil {
				return eris.Wrap(err, "seed: load vocab")
			}
			opts = append(opts, synth.WithVocab(vocab))
		}

		leads := synth.New(opts...).Generate(count)

		if seedDryRun {
			zap.L().Info("dry run, nothing written",
				zap.Int("generated", len(leads)),
			)
			return nil
		}

		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Migrate(ctx); err != nil {
			return err
		}

		s := seeder.New(st, seeder.Config{
			ChunkSize:  cfg.Seed.ChunkSize,
			RatePerSec: cfg.Seed.RatePerSec,
		})
		if err := s.Reseed(ctx, leads); err != nil {
			return eris.Wrap(err, "seed: reseed")
		}

		stored, err := st.CountLeads(ctx)
		if err != nil {
			return eris.Wrap(err, "seed: count leads")
		}
		zap.L().Info("seed complete",
			zap.Int("generated", len(leads)),
			zap.Int("stored", stored),
		)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 0, "number of leads to generate (default from config)")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "generate without writing to the store")
	rootCmd.AddCommand(seedCmd)
}

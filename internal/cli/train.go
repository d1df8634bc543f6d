package cli

import (
	"log/slog"
	"time"

	"github.com/Rygbee/clearnlp"
	"github.com/Rygbee/clearnlp/internal/config"
	"github.com/spf13/cobra"
)

func (c *CLI) newTrainCommand() *cobra.Command {
	var corpusPath string
	var configPath string
	var dictPath string

	cmd := &cobra.Command{
		Use:   "train <modelfile>",
		Short: "Train a tagging model on a tagged corpus",
		Args:  cobra.ExactArgs(1),
		Example: `  clearnlp train model.json --corpus data/train.tsv
  clearnlp train model.json --corpus data/train.tsv --config config.yaml -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			modelPath := args[0]

			cfg := config.Default()
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			slog.Info("Training tagger", "corpus", corpusPath, "output", modelPath)
			start := time.Now()
			tg, err := clearnlp.Train(corpusPath, &clearnlp.TrainConfig{
				Config:       cfg,
				CompoundDict: dictPath,
			})
			if err != nil {
				return err
			}
			slog.Debug("Training completed", "duration", time.Since(start))
			if err := tg.Save(modelPath); err != nil {
				return err
			}
			slog.Info("Model saved", "path", modelPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "data/train.tsv", "Path to tagged training corpus")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to YAML training config")
	cmd.Flags().StringVar(&dictPath, "compound-dict", "", "Path to compound dictionary resource")
	return cmd
}

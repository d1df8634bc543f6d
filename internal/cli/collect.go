package cli

import (
	"fmt"
	"log/slog"

	"github.com/Rygbee/clearnlp"
	"github.com/Rygbee/clearnlp/internal/config"
	"github.com/spf13/cobra"
)

func (c *CLI) newCollectCommand() *cobra.Command {
	var corpusPath string
	var configPath string

	cmd := &cobra.Command{
		Use:     "collect",
		Short:   "Report vocabulary sizes for a corpus without training",
		Example: `  clearnlp collect --corpus data/train.tsv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			slog.Info("Collecting", "corpus", corpusPath)
			result, err := clearnlp.Collect(corpusPath, &clearnlp.TrainConfig{Config: cfg})
			if err != nil {
				return err
			}

			fmt.Printf("Sentences: %d\n", result.Sentences)
			fmt.Printf("Instances after cutoffs: %d\n", result.Instances)
			fmt.Printf("Labels: %d\n", result.Labels)
			fmt.Printf("Features: %d\n", result.Features)
			fmt.Printf("Ambiguity classes: %d\n", result.AmbiguityClasses)
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "data/train.tsv", "Path to tagged corpus")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to YAML training config")
	return cmd
}

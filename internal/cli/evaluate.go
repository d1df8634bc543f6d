package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Rygbee/clearnlp"
	"github.com/spf13/cobra"
)

func (c *CLI) newEvaluateCommand() *cobra.Command {
	var corpusPath string
	var dictPath string

	cmd := &cobra.Command{
		Use:     "evaluate <modelfile>",
		Short:   "Evaluate model accuracy on a held-out corpus",
		Args:    cobra.ExactArgs(1),
		Example: `  clearnlp evaluate model.json --corpus data/dev.tsv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tg, err := clearnlp.Load(args[0])
			if err != nil {
				return err
			}
			if dictPath != "" {
				if err := tg.LoadCompoundDict(dictPath); err != nil {
					return err
				}
			}

			slog.Info("Evaluating", "corpus", corpusPath)
			start := time.Now()
			result, err := tg.Evaluate(corpusPath)
			if err != nil {
				return err
			}
			slog.Debug("Evaluation completed", "duration", time.Since(start))

			fmt.Printf("Token accuracy: %.2f%% (%d/%d)\n",
				result.TokenAccuracy*100, result.TokenCorrect, result.TokenTotal)
			fmt.Printf("Sentence accuracy: %.2f%% (%d/%d)\n",
				result.SentenceAccuracy*100, result.SentenceCorrect, result.SentenceTotal)
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "data/dev.tsv", "Path to tagged evaluation corpus")
	cmd.Flags().StringVar(&dictPath, "compound-dict", "", "Path to compound dictionary resource")
	return cmd
}

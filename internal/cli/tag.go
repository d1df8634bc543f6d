package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/Rygbee/clearnlp"
	"github.com/Rygbee/clearnlp/internal/corpus"
	"github.com/spf13/cobra"
)

func (c *CLI) newTagCommand() *cobra.Command {
	var inputPath string
	var dictPath string

	cmd := &cobra.Command{
		Use:   "tag <modelfile>",
		Short: "Tag sentences with a trained model",
		Args:  cobra.ExactArgs(1),
		Example: `  clearnlp tag model.json --input sentences.txt
  echo "The dog barks" | clearnlp tag model.json`,
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

			var sentences [][]string
			if inputPath != "" {
				sentences, err = corpus.ReadRawFile(inputPath)
			} else {
				sentences, err = corpus.ReadRaw(os.Stdin)
			}
			if err != nil {
				return err
			}

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()
			for _, tokens := range sentences {
				tags := tg.Tag(tokens)
				for i, token := range tokens {
					fmt.Fprintf(out, "%s\t%s\n", token, tags[i])
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Input file with one sentence per line (default: stdin)")
	cmd.Flags().StringVar(&dictPath, "compound-dict", "", "Path to compound dictionary resource")
	return cmd
}

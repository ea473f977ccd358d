package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/tupilabs/nerbr"
	"github.com/tupilabs/nerbr/corpus"
)

func (c *CLI) newEvaluateCommand() *cobra.Command {
	var corpusPath string
	var modelPath string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score every tagger against an annotated corpus",
		Example: `  nerbr evaluate
  nerbr evaluate --corpus sentences.yaml --model model.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sentences := corpus.Builtin()
			if corpusPath != "" {
				var err error
				sentences, err = corpus.Load(corpusPath)
				if err != nil {
					return err
				}
			}

			tagger, err := loadTagger(modelPath)
			if err != nil {
				return err
			}

			slog.Info("Evaluating", "sentences", len(sentences))
			start := time.Now()
			metrics, err := tagger.Evaluate(sentences)
			if err != nil {
				return err
			}
			slog.Debug("Evaluation completed", "duration", time.Since(start))

			fmt.Printf("%-12s %9s %9s %9s %9s\n", "model", "tok-acc", "prec", "recall", "f1")
			for _, mode := range []nerbr.Mode{
				nerbr.ModeCRF, nerbr.ModeHMM, nerbr.ModeMaxEnt,
				nerbr.ModePerceptron, nerbr.ModeSpan,
			} {
				m := metrics[mode]
				fmt.Printf("%-12s %8.1f%% %8.1f%% %8.1f%% %8.1f%%\n",
					mode, m.TokenAccuracy*100, m.Precision*100, m.Recall*100, m.F1*100)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "Path to a YAML corpus file (default: built-in corpus)")
	cmd.Flags().StringVar(&modelPath, "model", "", "Path to model file (default: built-in model)")
	return cmd
}

package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/tupilabs/nerbr"
	"github.com/tupilabs/nerbr/corpus"
)

func (c *CLI) newTrainCommand() *cobra.Command {
	var corpusPath string
	var trainCRF bool
	var iterations int

	cmd := &cobra.Command{
		Use:   "train <modelfile>",
		Short: "Train all taggers on an annotated corpus",
		Args:  cobra.ExactArgs(1),
		Example: `  # Train on the built-in corpus
  nerbr train model.json

  # Train on your own annotated sentences
  nerbr train model.json --corpus sentences.yaml

  # Also learn CRF weights instead of using the curated ones
  nerbr train model.json --crf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			modelPath := args[0]

			sentences := corpus.Builtin()
			if corpusPath != "" {
				var err error
				sentences, err = corpus.Load(corpusPath)
				if err != nil {
					return err
				}
			}

			cfg := nerbr.DefaultTrainConfig()
			cfg.TrainCRF = trainCRF
			cfg.CRF.Verbose = c.verbose
			if iterations > 0 {
				cfg.CRF.Iterations = iterations
				cfg.MaxEntIterations = iterations
				cfg.PerceptronIterations = iterations
				cfg.SpanIterations = iterations
			}

			slog.Info("Training", "sentences", len(sentences), "output", modelPath)
			start := time.Now()
			tagger := nerbr.Train(sentences, cfg)
			slog.Debug("Training completed", "duration", time.Since(start))

			if err := tagger.Save(modelPath); err != nil {
				return err
			}
			slog.Info("Model saved", "path", modelPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "Path to a YAML corpus file (default: built-in corpus)")
	cmd.Flags().BoolVar(&trainCRF, "crf", false, "Learn CRF weights from the corpus")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "Override training iterations for all models")
	return cmd
}

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tupilabs/nerbr/corpus"
)

func (c *CLI) newCorpusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Inspect and export the annotated corpus",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	cmd.AddCommand(c.newCorpusExportCommand())
	cmd.AddCommand(c.newCorpusStatsCommand())
	return cmd
}

func (c *CLI) newCorpusExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the built-in corpus as YAML, a starting point for custom corpora",
		Args:  cobra.ExactArgs(1),
		Example: `  nerbr corpus export sentences.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sentences := corpus.Builtin()
			if err := corpus.Save(args[0], sentences); err != nil {
				return err
			}
			slog.Info("Corpus exported", "path", args[0], "sentences", len(sentences))
			return nil
		},
	}
}

func (c *CLI) newCorpusStatsCommand() *cobra.Command {
	var corpusPath string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print token and entity counts per domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			sentences := corpus.Builtin()
			if corpusPath != "" {
				var err error
				sentences, err = corpus.Load(corpusPath)
				if err != nil {
					return err
				}
			}

			tokens := 0
			entities := map[string]int{}
			domains := map[string]int{}
			for _, s := range sentences {
				tokens += len(s.Annotations)
				domains[s.Domain]++
				for _, a := range s.Annotations {
					if len(a.Tag) > 2 && a.Tag[0] == 'B' {
						entities[a.Tag[2:]]++
					}
				}
			}

			fmt.Printf("sentences: %d\ntokens: %d\n", len(sentences), tokens)
			fmt.Println("entities:")
			for _, cat := range []string{"PER", "ORG", "LOC", "MISC"} {
				fmt.Printf("  %-5s %d\n", cat, entities[cat])
			}
			fmt.Println("domains:")
			for domain, n := range domains {
				fmt.Printf("  %-15s %d\n", domain, n)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "Path to a YAML corpus file (default: built-in corpus)")
	return cmd
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/tupilabs/nerbr"
	"github.com/tupilabs/nerbr/tag"
)

func (c *CLI) newTagCommand() *cobra.Command {
	var modelPath string
	var modeName string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tag [text]",
		Short: "Recognize named entities in text",
		Args:  cobra.MaximumNArgs(1),
		Example: `  nerbr tag "Lula viajou para Brasília para encontrar a diretoria da Petrobras."

  # Pipe text from stdin
  cat noticia.txt | nerbr tag

  # Choose the tagging algorithm
  nerbr tag "Pelé jogou no Santos." --mode hmm

  # Machine readable output
  nerbr tag "Pelé jogou no Santos." --json

  # Use a previously trained model
  nerbr tag "Pelé jogou no Santos." --model model.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := nerbr.ParseMode(modeName)
			if err != nil {
				return err
			}

			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				if isStdinTerminal() {
					return cmd.Help()
				}
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				text = strings.TrimSpace(string(data))
			}

			tagger, err := loadTagger(modelPath)
			if err != nil {
				return err
			}

			start := time.Now()
			tokens, entities, err := tagger.Annotate(text, mode)
			if err != nil {
				return err
			}
			slog.Debug("Annotation completed",
				"mode", mode, "tokens", len(tokens),
				"entities", len(entities), "duration", time.Since(start))

			if asJSON {
				output, _ := json.MarshalIndent(struct {
					Tokens   []tag.TaggedToken `json:"tokens"`
					Entities []tag.EntitySpan  `json:"entities"`
				}{tokens, entities}, "", "  ")
				fmt.Println(string(output))
				return nil
			}

			fmt.Println(highlight(text, entities))
			for _, e := range entities {
				fmt.Printf("  %-6s %q (%.0f%%)\n", e.Label, e.Text, e.Confidence*100)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "Path to model file (default: built-in model)")
	cmd.Flags().StringVar(&modeName, "mode", "crf", "Tagging algorithm: crf, hmm, maxent, perceptron, span")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON instead of highlighted text")
	return cmd
}

func isStdinTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func loadTagger(modelPath string) (*nerbr.Tagger, error) {
	if modelPath != "" {
		slog.Debug("Loading model", "path", modelPath)
		return nerbr.Load(modelPath)
	}
	return nerbr.New(), nil
}

// highlight colorizes recognized entities in the original text. Spans carry
// byte offsets, so the text can be rebuilt around them verbatim.
func highlight(text string, entities []tag.EntitySpan) string {
	var b strings.Builder
	pos := 0
	for _, e := range entities {
		if e.Start < pos || e.End > len(text) {
			continue
		}
		b.WriteString(text[pos:e.Start])
		style := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(e.Category.Color()))
		b.WriteString(style.Render(text[e.Start:e.End]))
		pos = e.End
	}
	b.WriteString(text[pos:])
	return b.String()
}

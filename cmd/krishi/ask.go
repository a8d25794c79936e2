package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"krishisahay/internal/engine"
	"krishisahay/internal/models"
	"krishisahay/internal/validation"
)

func newAskCmd(root *rootOptions) *cobra.Command {
	var (
		category   string
		explain    bool
		firstMatch bool
	)

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer a question",
		Long: `Answer a question in the given category. With no question argument,
questions are read from stdin one per line.`,
		Example: `  krishi ask -c crops how to grow rice
  krishi ask -c pests --explain "how do I control aphids"
  echo "when to apply nitrogen" | krishi ask -c fertilizers`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, ok := models.ParseCategory(category)
			if !ok {
				return fmt.Errorf("invalid category %q: want crops, pests or fertilizers", category)
			}

			kb, err := root.knowledge()
			if err != nil {
				return err
			}
			eng, err := engine.New(kb, engine.Options{FirstMatchBuckets: firstMatch})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				return answer(out, eng, cat, strings.Join(args, " "), explain)
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if strings.TrimSpace(scanner.Text()) == "" {
					continue
				}
				if err := answer(out, eng, cat, scanner.Text(), explain); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(models.CategoryCrops), "crops, pests or fertilizers")
	cmd.Flags().BoolVar(&explain, "explain", false, "print the recognized entity and intent")
	cmd.Flags().BoolVar(&firstMatch, "first-match", false, "use the first matching topic for crop questions without a named crop")
	return cmd
}

func answer(w io.Writer, eng *engine.Engine, cat models.Category, raw string, explain bool) error {
	if valid, msg := validation.ValidateQuery(raw); !valid {
		return fmt.Errorf("%s", msg)
	}
	res := eng.Answer(cat, validation.NormalizeQuery(raw))

	if explain {
		entity := res.Entity.Key
		if entity == "" {
			entity = "-"
		}
		fmt.Fprintf(w, "entity: %s\nintent: %s\n", entity, res.Intent)
	}
	_, err := fmt.Fprintln(w, res.Answer)
	return err
}

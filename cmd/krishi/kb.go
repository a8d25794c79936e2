package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"krishisahay/internal/models"
)

func newKBCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "kb [category]",
		Short:     "Print the knowledge base",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"crops", "pests", "fertilizers"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kb, err := root.knowledge()
			if err != nil {
				return err
			}

			cats := models.Categories
			if len(args) == 1 {
				cat, ok := models.ParseCategory(args[0])
				if !ok {
					return fmt.Errorf("invalid category %q", args[0])
				}
				cats = []models.Category{cat}
			}

			out := cmd.OutOrStdout()
			for i, cat := range cats {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "[%s]\n", cat)
				for _, key := range kb.Keys(cat) {
					fact, _ := kb.Fact(cat, key)
					fmt.Fprintf(out, "%s: %s\n", key, fact)
				}
			}
			return nil
		},
	}
}

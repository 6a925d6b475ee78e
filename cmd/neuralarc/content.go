package main

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/neuralarc/site/content"
)

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect the site content",
	}
	cmd.AddCommand(newContentCheckCmd(), newContentListCmd())
	return cmd
}

func newContentCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load and validate the content set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := content.Load(cfg.contentFS())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"ok: %d services, %d projects in %d categories, %d testimonials, %d posts\n",
				len(lib.Services), len(lib.Projects), len(lib.Categories),
				len(lib.Testimonials), len(lib.Posts))
			return nil
		},
	}
}

var listKinds = []string{"services", "projects", "posts", "testimonials"}

func newContentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "list [" + strings.Join(listKinds, "|") + "]",
		Short:     "List one kind of content as a table",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: listKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := content.Load(cfg.contentFS())
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			switch args[0] {
			case "services":
				table.Header("ID", "Title", "Features")
				for _, s := range lib.Services {
					_ = table.Append(s.ID, s.Title, fmt.Sprint(len(s.Features)))
				}
			case "projects":
				table.Header("ID", "Title", "Category", "Client")
				for _, p := range lib.Projects {
					_ = table.Append(p.ID, p.Title, p.Category, p.Client)
				}
			case "posts":
				table.Header("Slug", "Title", "Date", "Author")
				for _, p := range lib.Posts {
					_ = table.Append(p.Slug, p.Title, p.Date.Format("2006-01-02"), p.Author)
				}
			case "testimonials":
				table.Header("Name", "Company", "Rating")
				for _, t := range lib.Testimonials {
					_ = table.Append(t.Name, t.Company, fmt.Sprint(t.Rating))
				}
			}
			return table.Render()
		},
	}
}

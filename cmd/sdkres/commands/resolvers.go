package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type resolverView struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

func (c *CLI) newResolversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolvers",
		Short: "List the resolver chain in the order it is consulted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := c.app.Resolvers(c.configPath)
			if err != nil {
				return err
			}

			views := make([]resolverView, 0, len(list))
			for _, r := range list {
				views = append(views, resolverView{Name: r.Name(), Priority: r.Priority()})
			}

			if c.jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "PRIORITY\tNAME")
			for _, v := range views {
				_, _ = fmt.Fprintf(w, "%d\t%s\n", v.Priority, v.Name)
			}
			return w.Flush()
		},
	}
}

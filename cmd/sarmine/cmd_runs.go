package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sarmine/store"
)

func newRunsCmd() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dbPath == "" {
				return errors.New("--db is required")
			}
			st, err := store.Open(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			defer st.Close()
			runs, err := st.Runs(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RUN\tCREATED\tWILD-TYPES\tRULES\tCANDIDATES")
			for _, r := range runs {
				n := 0
				for _, v := range r.Stats.CandidatesByStrategy {
					n += v
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n",
					r.ID, r.CreatedAt.Format(time.RFC3339), r.Stats.WildTypes, r.Stats.TotalRules, n)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite file written by 'sarmine run --db'")

	return cmd
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sarmine/candidate"
	"github.com/katalvlaran/sarmine/engine"
	"github.com/katalvlaran/sarmine/store"
)

func newRunCmd(g *globalFlags) *cobra.Command {
	var (
		dbPath  string
		asJSON  bool
		top     int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "run DATASET",
		Short: "Mine rules and print ranked candidates",
		Long: `Run the full pipeline for every configured wild-type (every record when
wild_types is empty) and print the candidates ranked by predicted fitness.

Examples:
  sarmine run data.csv
  sarmine run data.json --config sarmine.yaml --top 20
  sarmine run data.csv --db runs.db --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			ds, err := g.loadDataset(args[0])
			if err != nil {
				return err
			}
			eng, err := engine.New(cfg, engine.WithLogger(logger(cmd.ErrOrStderr(), cfg.LogLevel)))
			if err != nil {
				return err
			}
			rep, err := eng.Run(cmd.Context(), ds)
			if err != nil {
				return err
			}
			if dbPath != "" {
				st, err := store.Open(cmd.Context(), dbPath)
				if err != nil {
					return err
				}
				defer st.Close()
				if err = st.SaveReport(cmd.Context(), rep); err != nil {
					return err
				}
			}

			ranked := rep.Ranked()
			if top > 0 && len(ranked) > top {
				ranked = ranked[:top]
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				out := *rep
				out.Candidates = ranked
				return enc.Encode(out)
			}

			return printCandidates(cmd.OutOrStdout(), rep, ranked)
		},
	}
	f := cmd.Flags()
	f.StringVar(&dbPath, "db", "", "SQLite file to store the run in")
	f.BoolVar(&asJSON, "json", false, "print the report as JSON")
	f.IntVar(&top, "top", 0, "print only the N best candidates (0 prints all)")
	f.IntVar(&workers, "workers", 0, "override workers (0 uses GOMAXPROCS)")

	return cmd
}

func printCandidates(w io.Writer, rep *engine.Report, cs []candidate.Candidate) error {
	s := rep.Stats
	fmt.Fprintf(w, "run %s\n", rep.RunID)
	fmt.Fprintf(w, "wild-types %d (skipped %d)  rules %d  pairs %d  transitive %d  deduced %d  max clique %d  rule usage %.3f\n",
		s.WildTypes, s.SkippedWildTypes, s.TotalRules, s.CompatiblePairs, s.TransitivePairs,
		s.Deductions, s.MaxCliqueSize, s.RuleUsageRate)
	if s.Validated > 0 {
		fmt.Fprintf(w, "validated %d  hits %d\n", s.Validated, s.Hits)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tPREDICTED\tSTRATEGY\tWILD-TYPE\tCANDIDATE\tRULES\tMEASURED")
	for i, c := range cs {
		measured := "-"
		if v := c.Validation; v != nil {
			measured = fmt.Sprintf("%.4g (%s)", v.TrueFitness, v.RecordID)
		}
		fmt.Fprintf(tw, "%d\t%.4g\t%s\t%s\t%s\t%s\t%s\n",
			i+1, c.PredictedFitness, c.Strategy, c.WildTypeID, c.Key,
			strings.Join(c.SupportingRules, " "), measured)
	}

	return tw.Flush()
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
	"github.com/pdiddy/arxiv-scout/internal/history"
	"github.com/pdiddy/arxiv-scout/internal/search"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search arXiv for papers matching a query",
	Long: `Search queries the arXiv API, filters the candidates by publication date,
scores them locally against the query text, and prints a ranked page.

The query can be given as a positional argument or loaded (together with
filters) from a previously saved query file.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("in", "all", "field to search: all, title, abstract, author")
	searchCmd.Flags().StringSlice("category", nil, "restrict to arXiv categories (e.g. cs.LG, repeatable)")
	searchCmd.Flags().String("author", "", "additional author constraint")
	searchCmd.Flags().String("from", "", "publication date range start (YYYY-MM-DD)")
	searchCmd.Flags().String("to", "", "publication date range end (YYYY-MM-DD)")
	searchCmd.Flags().Int("max-results", 0, "maximum number of results to return (default 20)")
	searchCmd.Flags().String("sort", "relevance", "sort mode: relevance or date")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save the query and results to a YAML file")
	searchCmd.Flags().String("query-file", "", "load query parameters from a saved YAML file")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	req, err := requestFromFlags(cmd, args, cfg)
	if err != nil {
		return err
	}

	client := arxiv.NewClient(cfg.Search, nil)
	resp, err := search.Run(context.Background(), client, req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if cfg.History.Enabled {
		recordHistory(cfg.History, req, resp.Total)
	}

	if save, _ := cmd.Flags().GetString("save"); save != "" {
		if err := search.WriteQueryFile(save, req, resp); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved query and results to %s\n", save)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return search.FormatJSON(resp, os.Stdout)
	}
	search.FormatTable(resp, os.Stdout)
	return nil
}

// requestFromFlags assembles the SearchRequest from the query file (if any)
// and the command-line flags. Flags win over query-file values.
func requestFromFlags(cmd *cobra.Command, args []string, cfg types.AppConfig) (types.SearchRequest, error) {
	var req types.SearchRequest

	if path, _ := cmd.Flags().GetString("query-file"); path != "" {
		qf, err := search.ReadQueryFile(path)
		if err != nil {
			return req, err
		}
		req, err = qf.Request.ToRequest()
		if err != nil {
			return req, err
		}
	}

	if len(args) > 0 {
		req.Query = args[0]
	}
	if cmd.Flags().Changed("in") {
		in, _ := cmd.Flags().GetString("in")
		req.SearchIn = types.SearchField(in)
	}
	if cmd.Flags().Changed("category") {
		req.Categories, _ = cmd.Flags().GetStringSlice("category")
	}
	if cmd.Flags().Changed("author") {
		req.Authors, _ = cmd.Flags().GetString("author")
	}
	if cmd.Flags().Changed("sort") {
		sortBy, _ := cmd.Flags().GetString("sort")
		req.SortBy = types.SortMode(sortBy)
	}
	if cmd.Flags().Changed("max-results") {
		req.MaxResults, _ = cmd.Flags().GetInt("max-results")
	} else if req.MaxResults == 0 {
		req.MaxResults = cfg.Search.MaxResults
	}

	const dateFmt = "2006-01-02"
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		t, err := time.Parse(dateFmt, from)
		if err != nil {
			return req, fmt.Errorf("invalid --from date %q: %w", from, err)
		}
		req.DateFrom = t
	}
	if to, _ := cmd.Flags().GetString("to"); to != "" {
		t, err := time.Parse(dateFmt, to)
		if err != nil {
			return req, fmt.Errorf("invalid --to date %q: %w", to, err)
		}
		req.DateTo = t
	}

	return req.Normalize(), nil
}

// recordHistory logs the search to the history store. Failures only warn.
func recordHistory(cfg types.HistoryConfig, req types.SearchRequest, total int) {
	store, err := history.NewStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open history store: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Record(context.Background(), req, total); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
	}
}

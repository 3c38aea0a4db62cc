package cmd

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	searchApi "shopsearch.GO/api/search"
	"shopsearch.GO/config"
)

var (
	runKeyword  string
	runCategory string
	runFilters  []string
	runSort     string
	runPage     int
	runLimit    int
)

// search:run executes a query from the shell, the same path the API serves.
// Handy for checking facet counts and sort order against a live database.
var searchRunCmd = &cobra.Command{
	Use:   "search:run",
	Short: "Run a search query against the catalog and print the results",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		raw := url.Values{}
		if runKeyword != "" {
			raw.Set("keyword", runKeyword)
		}
		if runCategory != "" {
			raw.Set("categoryId", runCategory)
		}
		if runSort != "" {
			raw.Set("sortBy", runSort)
		}
		raw.Set("page", fmt.Sprintf("%d", runPage))
		raw.Set("limit", fmt.Sprintf("%d", runLimit))
		for _, f := range runFilters {
			code, values, ok := strings.Cut(f, "=")
			if !ok {
				fmt.Printf("Bad --filter %q, want code=v1,v2\n", f)
				return
			}
			raw.Set("attributes["+code+"]", values)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		start := time.Now()
		res, err := searchApi.GetService(db).Search(ctx, raw)
		if err != nil {
			fmt.Printf("Search failed: %v\n", err)
			return
		}

		fmt.Printf("%d results (page %d/%d) in %s\n\n",
			res.Pagination.Total, res.Pagination.Page, res.Pagination.TotalPages,
			time.Since(start).Round(time.Millisecond))
		for _, p := range res.Products {
			fmt.Printf("  %-6d %-24s %-32s %.2f\n", p.EntityID, p.SKU, p.Name, p.EffectivePrice())
		}
		if len(res.Facets.Categories) > 0 {
			fmt.Println("\nCategories:")
			for _, c := range res.Facets.Categories {
				fmt.Printf("  %-32s %d\n", c.Name, c.Count)
			}
		}
		if res.Facets.PriceRange != nil {
			fmt.Printf("\nPrice range: %.2f - %.2f\n", res.Facets.PriceRange.Min, res.Facets.PriceRange.Max)
		}
		for _, a := range res.Facets.Attributes {
			fmt.Printf("\n%s:\n", a.Label)
			for _, v := range a.Values {
				fmt.Printf("  %-32s %d\n", v.Value, v.Count)
			}
		}
	},
}

func init() {
	searchRunCmd.Flags().StringVarP(&runKeyword, "keyword", "k", "", "Search keyword")
	searchRunCmd.Flags().StringVar(&runCategory, "category", "", "Category ID filter")
	searchRunCmd.Flags().StringArrayVar(&runFilters, "filter", nil, "Attribute filter, code=v1,v2 (repeatable)")
	searchRunCmd.Flags().StringVar(&runSort, "sort", "", "Sort order (relevance, price, newest, popularity)")
	searchRunCmd.Flags().IntVar(&runPage, "page", 1, "Page number")
	searchRunCmd.Flags().IntVar(&runLimit, "limit", 20, "Page size")
	rootCmd.AddCommand(searchRunCmd)
}

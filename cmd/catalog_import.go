package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"shopsearch.GO/config"
	catalogService "shopsearch.GO/service/catalog"
)

var (
	importFile     string
	importBatch    int
	importMediaDir string
	importMigrate  bool
)

var importCmd = &cobra.Command{
	Use:   "catalog:import",
	Short: "Import products from CSV into the catalog tables",
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(importFile)
		if err != nil {
			fmt.Printf("Failed to open CSV: %v\n", err)
			return
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		if importMigrate {
			if err := catalogService.Migrate(db); err != nil {
				fmt.Printf("Migrate failed: %v\n", err)
				return
			}
		}

		res, err := catalogService.ImportCSV(db, f, catalogService.ImportOptions{
			BatchSize: importBatch,
			MediaDir:  importMediaDir,
		})
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}

		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}

		fmt.Printf(`
=== Import Report ===
CSV rows:       %d
Created:        %d
Updated:        %d
Skipped:        %d
Thumbnails:     %d
Total time:     %s
=====================
`, res.TotalRows, res.Created, res.Updated, res.Skipped,
			res.Thumbnails, res.TotalTime.Round(time.Millisecond))
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file path (required)")
	importCmd.MarkFlagRequired("file")
	importCmd.Flags().IntVar(&importBatch, "batch-size", 500, "Batch size for DB operations")
	importCmd.Flags().StringVar(&importMediaDir, "media-dir", "", "Media directory; when set, thumbnails are generated")
	importCmd.Flags().BoolVar(&importMigrate, "migrate", false, "Run AutoMigrate before importing")
	rootCmd.AddCommand(importCmd)
}

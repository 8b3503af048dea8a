package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/prepware/stockpile/pkg/application/dto"
	"github.com/prepware/stockpile/pkg/application/services/calc"
	"github.com/prepware/stockpile/pkg/application/services/plan"
	"github.com/prepware/stockpile/pkg/domain/entities"
	"github.com/prepware/stockpile/pkg/infrastructure/config"
	"github.com/prepware/stockpile/pkg/infrastructure/repositories/csv"
	"github.com/prepware/stockpile/pkg/infrastructure/repositories/memory"
)

func main() {
	// Command line flags
	var (
		snapshotFile = flag.String("snapshot", "", "Path to YAML snapshot (household, catalog, inventory)")
		optionsFile  = flag.String("options", "", "Path to YAML options file (optional)")
		inventoryCSV = flag.String("inventory-csv", "", "Path to CSV file with additional inventory items (optional)")
		category     = flag.String("category", "", "Calculate a single category instead of all")
		format       = flag.String("format", "text", "Output format: text, json")
		outputDir    = flag.String("output", "", "Output directory for results (optional)")
		verbose      = flag.Bool("verbose", false, "Enable verbose output")
	)

	flag.Parse()

	if *snapshotFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -snapshot is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*snapshotFile, *optionsFile, *inventoryCSV, *category, *format, *outputDir, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(snapshotFile, optionsFile, inventoryCSV, category, format, outputDir string, verbose bool) error {
	opts := calc.DefaultOptions()
	if optionsFile != "" {
		loaded, err := config.LoadOptions(optionsFile)
		if err != nil {
			return err
		}
		opts = loaded
	}

	snapshot, err := config.LoadSnapshot(snapshotFile)
	if err != nil {
		return err
	}

	items := snapshot.Items
	if inventoryCSV != "" {
		csvItems, err := csv.NewLoader().LoadItems(inventoryCSV)
		if err != nil {
			return err
		}
		items = append(items, csvItems...)
		if verbose {
			fmt.Printf("Loaded %d inventory items from %s\n", len(csvItems), inventoryCSV)
		}
	}

	inventoryRepo := memory.NewInventoryRepository()
	inventoryRepo.Load(items)
	householdRepo := memory.NewHouseholdRepository(snapshot.Household)
	catalogRepo := memory.NewCatalogRepository(snapshot.Definitions)
	for _, id := range snapshot.Disabled {
		if err := catalogRepo.SetDefinitionDisabled(id, true); err != nil {
			return err
		}
	}

	service := plan.NewService(opts)

	var summary *dto.Summary
	if category != "" {
		report, err := service.CalculateCategory(entities.CategoryID(category), inventoryRepo, householdRepo, catalogRepo)
		if err != nil {
			return err
		}
		summary = &dto.Summary{
			Categories: []dto.CategoryReport{*report},
			Score:      report.Percentage,
		}
		summary.Status = report.Status
	} else {
		summary, err = service.CalculateAll(inventoryRepo, householdRepo, catalogRepo)
		if err != nil {
			return err
		}
	}

	return generateOutput(summary, OutputConfig{
		Format:    format,
		OutputDir: outputDir,
		Verbose:   verbose,
	})
}

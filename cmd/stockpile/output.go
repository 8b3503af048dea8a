package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prepware/stockpile/pkg/application/dto"
)

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// generateOutput generates formatted output based on configuration
func generateOutput(summary *dto.Summary, config OutputConfig) error {
	switch config.Format {
	case "text":
		return generateTextOutput(summary, config)
	case "json":
		return generateJSONOutput(summary, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput generates human-readable text output
func generateTextOutput(summary *dto.Summary, config OutputConfig) error {
	var output string

	output += "═══════════════════════════════════════════════════════════════\n"
	output += "                 EMERGENCY SUPPLY READINESS\n"
	output += "═══════════════════════════════════════════════════════════════\n\n"

	output += fmt.Sprintf("Overall Score: %.0f%%  Status: %s\n\n", summary.Score, summary.Status)

	for _, report := range summary.Categories {
		output += fmt.Sprintf("── %s (%s) ", report.CategoryID, report.StrategyID)
		output += fmt.Sprintf("%.0f%% %s", report.Percentage, report.Status)
		if report.HasEnough {
			output += "  ✓ covered"
		}
		output += "\n"

		result := report.Result
		if result.PrimaryUnit != "" {
			output += fmt.Sprintf("   Held: %.1f %s of %.1f %s\n",
				result.TotalActual, result.PrimaryUnit,
				result.TotalNeeded, result.PrimaryUnit)
		} else {
			output += fmt.Sprintf("   Held: %.1f of %.0f items\n",
				result.TotalActual, result.TotalNeeded)
		}

		if result.Calories != nil {
			output += fmt.Sprintf("   Calories: %.0f of %.0f kcal (missing %.0f)\n",
				result.Calories.ActualCalories,
				result.Calories.NeededCalories,
				result.Calories.MissingCalories)
		}

		if result.Water != nil {
			output += fmt.Sprintf("   Water: %.1f L drinking + %.2f L preparation\n",
				result.Water.DrinkingWaterLiters,
				result.Water.PreparationWaterLiters)
		}

		if len(result.Shortages) > 0 {
			output += "   Shortages:\n"
			for _, shortage := range result.Shortages {
				output += fmt.Sprintf("     %-24s missing %6.1f %-6s (have %.1f, need %.1f)\n",
					shortage.ItemName,
					float64(shortage.Missing), shortage.Unit,
					float64(shortage.Actual), float64(shortage.Needed))
			}
		}
		output += "\n"
	}

	output += "═══════════════════════════════════════════════════════════════\n"

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		filename := filepath.Join(config.OutputDir, "readiness.txt")
		if err := os.WriteFile(filename, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write text output: %w", err)
		}

		if config.Verbose {
			fmt.Printf("Text output written to: %s\n", filename)
		}
	} else {
		fmt.Print(output)
	}

	return nil
}

// generateJSONOutput generates JSON output
func generateJSONOutput(summary *dto.Summary, config OutputConfig) error {
	jsonResult := struct {
		GeneratedAt string      `json:"generated_at"`
		Summary     *dto.Summary `json:"summary"`
	}{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Summary:     summary,
	}

	jsonBytes, err := json.MarshalIndent(jsonResult, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		filename := filepath.Join(config.OutputDir, "readiness.json")
		if err := os.WriteFile(filename, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write JSON output: %w", err)
		}

		if config.Verbose {
			fmt.Printf("JSON output written to: %s\n", filename)
		}
	} else {
		fmt.Printf("%s\n", jsonBytes)
	}

	return nil
}

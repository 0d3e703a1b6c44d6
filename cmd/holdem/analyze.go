package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cardroomlabs/holdem/internal/analytics"
)

// AnalyzeCmd reports on a previously exported hand-history file
type AnalyzeCmd struct {
	File    string `arg:"" help:"JSON hand-history file to analyze"`
	Output  string `short:"o" help:"Write the report to a file instead of stdout"`
	Summary bool   `short:"s" help:"Print the summary as JSON instead of the full report"`
}

func (c *AnalyzeCmd) Run() error {
	record, summary, err := analytics.AnalyzeFile(c.File)
	if err != nil {
		return err
	}

	if c.Summary {
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	report := analytics.Report(record)
	if c.Output != "" {
		if err := os.WriteFile(c.Output, []byte(report), 0o644); err != nil {
			return err
		}
		fmt.Printf("analysis report written to %s\n", c.Output)
		return nil
	}
	fmt.Print(report)
	return nil
}

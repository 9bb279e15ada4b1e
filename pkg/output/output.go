// Package output renders command results in the configured format. Text is
// the human default; json emits machine-readable output for scripting.
package output

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/neofinance/neofin/pkg/config"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
	FormatText  OutputFormat = "text"
)

// GetOutputFormat returns the configured output format
func GetOutputFormat() OutputFormat {
	switch config.GetString("output.format") {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// ValidateOutputFormat checks if format is valid
func ValidateOutputFormat(format string) bool {
	return format == "json" || format == "table" || format == "text"
}

// Print outputs data in the configured format with optional title
func Print(title string, data interface{}) error {
	if GetOutputFormat() == FormatJSON {
		return printJSON(data)
	}

	if title != "" {
		fmt.Printf("%s:\n", title)
	}
	return printJSON(data)
}

// PrintList outputs tabular rows. Text and table formats render an aligned
// table; json emits the rows as an array.
func PrintList(title string, items interface{}, columns []string) error {
	if GetOutputFormat() == FormatJSON {
		return printJSON(items)
	}

	if title != "" {
		fmt.Printf("%s:\n", title)
	}
	if rows, ok := items.([][]string); ok {
		printTable(columns, rows)
		return nil
	}
	return printJSON(items)
}

// PrintRecord outputs a single record. Text renders bold key-value lines.
func PrintRecord(title string, record map[string]interface{}) error {
	if GetOutputFormat() == FormatJSON {
		return printJSON(record)
	}

	if title != "" {
		fmt.Printf("%s:\n", title)
	}
	bold := color.New(color.Bold)
	for key, value := range record {
		bold.Print(key + ": ")
		fmt.Printf("%v\n", value)
	}
	return nil
}

// PrintSuccess prints a success message
func PrintSuccess(msg string, args ...interface{}) {
	color.New(color.FgGreen).Printf(msg+"\n", args...)
}

// PrintError prints an error message
func PrintError(msg string, args ...interface{}) {
	color.New(color.FgRed).Printf("Error: "+msg+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(msg string, args ...interface{}) {
	color.New(color.FgCyan).Printf(msg+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(msg string, args ...interface{}) {
	color.New(color.FgYellow).Printf("Warning: "+msg+"\n", args...)
}

func printJSON(data interface{}) error {
	encoder := json.NewEncoder(color.Output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func printTable(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(color.Output, 0, 0, 2, ' ', 0)
	bold := color.New(color.Bold)

	for i, h := range headers {
		bold.Fprint(w, h)
		if i < len(headers)-1 {
			fmt.Fprint(w, "\t")
		}
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprint(w, cell)
			if i < len(row)-1 {
				fmt.Fprint(w, "\t")
			}
		}
		fmt.Fprintln(w)
	}

	w.Flush()
}

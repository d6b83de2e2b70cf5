package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// ConfigRenderer renders local config output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{out: out}
}

// RenderConfig prints every key with its stored and effective value
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if !result.Exists {
		fmt.Fprintln(r.out, FormatWarning("No local config file, showing effective values only"))
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Key", "Stored", "Effective", "Description"})
	for _, e := range result.Entries {
		effective := orDash(e.Effective)
		if e.Overridden() {
			effective += " (override)"
		}
		t.AppendRow(table.Row{headerStyle.Sprint(e.Key), orDash(e.Stored), effective, e.Description})
	}
	t.Render()

	fmt.Fprintf(r.out, "config file: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	if result.Previous != "" && result.Previous != result.Value {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Set %s to %s (was %s)", result.Key, result.Value, result.Previous)))
	} else {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Set %s to %s", result.Key, result.Value)))
	}
	fmt.Fprintf(r.out, "config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Removed %s (was %s)", result.Key, result.RemovedValue)))
	fmt.Fprintf(r.out, "config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/dao-cli/internal/domain"
)

// EventsRenderer renders the event journal
type EventsRenderer struct {
	out io.Writer
}

// NewEventsRenderer creates a new events renderer
func NewEventsRenderer(out io.Writer) *EventsRenderer {
	return &EventsRenderer{out: out}
}

// Render renders events oldest first
func (r *EventsRenderer) Render(events []*domain.RecordedEvent) error {
	if len(events) == 0 {
		fmt.Fprintln(r.out, "No events found")
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.AppendHeader(table.Row{"#", "TIME", "EVENT"})
	for _, e := range events {
		t.AppendRow(table.Row{e.Index, timestampStyle.Sprint(FormatTime(e.Timestamp)), e.Event.String()})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

var _ Renderer[[]*domain.RecordedEvent] = (*EventsRenderer)(nil)

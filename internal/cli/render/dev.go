package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// DevRenderer renders developer tooling output
type DevRenderer struct {
	out io.Writer
}

// NewDevRenderer creates a new dev renderer
func NewDevRenderer(out io.Writer) *DevRenderer {
	return &DevRenderer{out: out}
}

// RenderWarp renders a clock warp
func (r *DevRenderer) RenderWarp(result *usecase.WarpTimeResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Warped chain time to %s", FormatTime(result.After))))
	fmt.Fprintf(r.out, "  Was:           %s\n", FormatTime(result.Before))
	fmt.Fprintf(r.out, "  Total offset:  %s\n", result.Offset)
	return nil
}

// RenderCalldata renders encoded call data
func (r *DevRenderer) RenderCalldata(result *usecase.EncodeCalldataResult) error {
	if result.Call != "" {
		fmt.Fprintf(r.out, "%s\n", labelStyle.Sprint(result.Call))
	}
	fmt.Fprintln(r.out, result.CallData.String())
	return nil
}

// RenderMethods lists the encodable token methods
func (r *DevRenderer) RenderMethods(methods []string) error {
	fmt.Fprintln(r.out, "Token methods:")
	for _, m := range methods {
		fmt.Fprintf(r.out, "  %s\n", m)
	}
	return nil
}

package render

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	labelStyle     = color.New(color.Faint)
	addressStyle   = color.New(color.FgWhite)
	amountStyle    = color.New(color.FgYellow)
	headerStyle    = color.New(color.FgCyan, color.Bold)
	timestampStyle = color.New(color.Faint)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatUnits renders a raw token amount in whole units, e.g. 1.5 CRT
func FormatUnits(amount *uint256.Int, decimals uint8, symbol string) string {
	if amount == nil {
		amount = new(uint256.Int)
	}
	raw := amount.ToBig()
	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(raw, unit, new(big.Int))

	s := whole.String()
	if frac.Sign() != 0 {
		digits := frac.String()
		digits = strings.Repeat("0", int(decimals)-len(digits)) + digits
		s += "." + strings.TrimRight(digits, "0")
	}
	if symbol != "" {
		s += " " + symbol
	}
	return s
}

// StatusLabel renders a proposal status, colored by outcome
func StatusLabel(status models.ProposalStatus) string {
	label := cases.Title(language.English).String(strings.ReplaceAll(string(status), "-", " "))
	switch status {
	case models.ProposalStatusActive:
		return color.New(color.FgCyan).Sprint(label)
	case models.ProposalStatusAwaitingFinish:
		return color.New(color.FgYellow).Sprint(label)
	case models.ProposalStatusPassed:
		return color.New(color.FgGreen, color.Bold).Sprint(label)
	case models.ProposalStatusRejected, models.ProposalStatusNoQuorum:
		return color.New(color.FgRed).Sprint(label)
	default:
		return label
	}
}

// FormatTime renders a chain timestamp
func FormatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}

// FormatRemaining renders how long until deadline, or how long ago it passed
func FormatRemaining(deadline, now time.Time) string {
	d := deadline.Sub(now).Round(time.Second)
	if d >= 0 {
		return fmt.Sprintf("in %s", d)
	}
	return fmt.Sprintf("%s ago", -d)
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

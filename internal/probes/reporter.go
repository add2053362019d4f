package probes

import (
	"fmt"
	"io"
	"strings"

	"log-admin-probe/internal/models"
)

const (
	valueNone    = "<none>"
	sampleIDsMax = 3
)

// reporter prints the human-readable progress of a run.
type reporter struct {
	w io.Writer
}

func (r *reporter) header() {
	fmt.Fprintln(r.w, "=== Log management check ===")
}

func (r *reporter) footer() {
	fmt.Fprintln(r.w, "\n=== Check complete ===")
}

func (r *reporter) section(n int, title string) {
	fmt.Fprintf(r.w, "\n%d. %s...\n", n, title)
}

func (r *reporter) line(format string, args ...any) {
	fmt.Fprintf(r.w, "   "+format+"\n", args...)
}

func (r *reporter) unreachable(baseURL string) {
	fmt.Fprintf(r.w, "error: cannot connect to server, make sure it is running at %s\n", baseURL)
}

func (r *reporter) unexpected(message string) {
	fmt.Fprintf(r.w, "error during check: %s\n", message)
}

// formatIDs lists ids as sent on the wire, so string ids keep their quotes.
func formatIDs(ids []models.LogID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		raw, _ := id.MarshalJSON()
		parts = append(parts, string(raw))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatCount(v models.JSONValue) string {
	return orNone(v.Text())
}

func orNone(s string) string {
	if s == "" {
		return valueNone
	}
	return s
}

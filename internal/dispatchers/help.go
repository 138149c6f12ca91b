package dispatchers

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/repl/internal/docs"
	"github.com/footprint-tools/repl/internal/domain"
	"github.com/footprint-tools/repl/internal/log"
	"github.com/footprint-tools/repl/internal/ui/style"
	"github.com/footprint-tools/repl/internal/usage"
)

const noDescription = "no description available"

// Help renders usage lines, command help and the command summary table.
// The summary table is computed once and reused until Recompute.
type Help struct {
	registry *Registry
	docs     *docs.Provider
	styler   domain.Styler

	summary string
	cached  bool
}

// NewHelp creates a help formatter. A nil provider behaves as one with no
// entries and a nil styler renders plain text.
func NewHelp(reg *Registry, provider *docs.Provider, styler domain.Styler) *Help {
	if styler == nil {
		styler = style.NopStyler{}
	}
	return &Help{registry: reg, docs: provider, styler: styler}
}

// SetDocs swaps the documentation provider. The summary table keeps its
// cached contents until Recompute.
func (h *Help) SetDocs(provider *docs.Provider) {
	h.docs = provider
}

// Recompute drops the cached summary table.
func (h *Help) Recompute() {
	h.summary = ""
	h.cached = false
}

func (h *Help) entry(cmd *Command) (docs.Entry, bool) {
	entry, ok := h.docs.Lookup(cmd.DocKey())
	if !ok {
		log.Debug("help: %v", usage.MissingDocumentation(cmd.DocKey().String()))
	}
	return entry, ok
}

// Usage renders "name p1 [p2]", bracketing parameters that have defaults.
func (h *Help) Usage(cmd *Command) string {
	parts := make([]string, 0, len(cmd.Params)+1)
	parts = append(parts, cmd.Name)
	for _, p := range cmd.Params {
		if p.HasDefault {
			parts = append(parts, "["+p.Name+"]")
		} else {
			parts = append(parts, p.Name)
		}
	}
	return strings.Join(parts, " ")
}

// ShortDescription returns the documented summary, or "" when there is none.
func (h *Help) ShortDescription(cmd *Command) string {
	entry, ok := h.entry(cmd)
	if !ok {
		return ""
	}
	return strings.TrimSpace(entry.Summary)
}

// FullHelp renders the name, description, usage line, parameters and
// remarks of cmd as blank-line separated sections. Empty remarks are left
// out.
func (h *Help) FullHelp(cmd *Command) string {
	entry, _ := h.entry(cmd)

	description := strings.TrimSpace(entry.Summary)
	if description == "" {
		description = cmd.Description
	}
	if description == "" {
		description = noDescription
	}

	sections := []string{
		h.styler.Header(cmd.Name),
		description,
		"usage: " + h.formatUsage(cmd),
	}

	if len(cmd.Params) > 0 {
		sections = append(sections, h.formatParams(cmd, entry))
	}

	remarks := strings.TrimSpace(cmd.LongHelp)
	if remarks == "" {
		remarks = strings.TrimSpace(entry.Remarks)
	}
	if remarks != "" {
		sections = append(sections, remarks)
	}

	return strings.Join(sections, "\n\n")
}

// formatUsage styles the command name as Info and its parameters as Muted.
func (h *Help) formatUsage(cmd *Command) string {
	line := h.Usage(cmd)
	rest := strings.TrimPrefix(line, cmd.Name)
	if rest == "" {
		return h.styler.Info(cmd.Name)
	}
	return h.styler.Info(cmd.Name) + " " + h.styler.Muted(strings.TrimSpace(rest))
}

func (h *Help) formatParams(cmd *Command, entry docs.Entry) string {
	width := 0
	for _, p := range cmd.Params {
		width = max(width, len(p.Name))
	}

	lines := make([]string, 0, len(cmd.Params))
	for _, p := range cmd.Params {
		text := strings.TrimSpace(cmd.ParamHelp[p.Name])
		if text == "" {
			text = strings.TrimSpace(entry.Param(p.Name))
		}
		if text == "" {
			lines = append(lines, "  "+h.styler.Info(p.Name))
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s  %s", h.styler.Info(fmt.Sprintf("%-*s", width, p.Name)), text))
	}
	return strings.Join(lines, "\n")
}

// SummaryTable lists every command that has a short description, one per
// line in declaration order.
func (h *Help) SummaryTable() string {
	if h.cached {
		return h.summary
	}

	type row struct{ name, text string }
	var rows []row
	width := 0
	for _, cmd := range h.registry.Enumerate() {
		text := h.ShortDescription(cmd)
		if text == "" {
			continue
		}
		rows = append(rows, row{name: cmd.Name, text: strings.Join(strings.Fields(text), " ")})
		width = max(width, len(cmd.Name))
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = fmt.Sprintf("  %s  %s", h.styler.Info(fmt.Sprintf("%-*s", width, r.name)), r.text)
	}

	h.summary = strings.Join(lines, "\n")
	h.cached = true
	return h.summary
}

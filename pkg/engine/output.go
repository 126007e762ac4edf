package engine

import (
	"fmt"
	"io"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/wildfunctions/formula_tree/pkg/expr"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Report summarizes one formula run.
type Report struct {
	Formula         string    `json:"formula"`
	Original        string    `json:"original,omitempty"`
	Simplified      string    `json:"simplified,omitempty"`
	OriginalLaTeX   string    `json:"original_latex,omitempty"`
	SimplifiedLaTeX string    `json:"simplified_latex,omitempty"`
	OriginalNodes   int       `json:"original_nodes,omitempty"`
	SimplifiedNodes int       `json:"simplified_nodes,omitempty"`
	Variables       []string  `json:"variables,omitempty"`
	Vars            expr.Vars `json:"vars,omitempty"`
	Result          *int64    `json:"result,omitempty"`
	Error           string    `json:"error,omitempty"`
}

func (r *Report) fill(f *Formula) {
	r.Original = f.Original.String()
	r.Simplified = f.Simplified.String()
	r.OriginalLaTeX = f.Original.LaTeX()
	r.SimplifiedLaTeX = f.Simplified.LaTeX()
	r.OriginalNodes = f.Original.NodeCount()
	r.SimplifiedNodes = f.Simplified.NodeCount()
	r.Variables = f.Variables()
}

// WriteReport writes r in the named format.
func WriteReport(w io.Writer, format string, r Report) error {
	switch format {
	case "json":
		return WriteJSON(w, r)
	case "latex":
		WriteLatex(w, r)
		return nil
	default:
		WriteText(w, r)
		return nil
	}
}

// WriteText writes a report in human-readable format.
func WriteText(w io.Writer, r Report) {
	if r.Original != "" {
		fmt.Fprintf(w, "Original:   %s\n", r.Original)
		fmt.Fprintf(w, "Simplified: %s\n", r.Simplified)
		fmt.Fprintf(w, "Nodes:      %d -> %d\n", r.OriginalNodes, r.SimplifiedNodes)
	}
	if len(r.Vars) > 0 {
		fmt.Fprintf(w, "Vars:       %s\n", formatVars(r.Vars))
	}
	if r.Result != nil {
		fmt.Fprintf(w, "Result:     %d\n", *r.Result)
	}
	if r.Error != "" {
		fmt.Fprintf(w, "Error:      %s\n", r.Error)
	}
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// latexEscape escapes characters that are special in LaTeX text mode.
func latexEscape(s string) string {
	return strings.NewReplacer(`\`, `\textbackslash{}`, "_", `\_`, "%", `\%`, "&", `\&`, "#", `\#`,
		"{", `\{`, "}", `\}`, "$", `\$`).Replace(s)
}

// WriteLatex writes a compilable LaTeX document showing the original and
// simplified formula.
func WriteLatex(w io.Writer, r Report) {
	fmt.Fprintln(w, `\documentclass{article}`)
	fmt.Fprintln(w, `\usepackage{amsmath}`)
	fmt.Fprintln(w, `\begin{document}`)
	fmt.Fprintf(w, "\\noindent Formula: \\verb|%s|\n\n", strings.ReplaceAll(r.Formula, "|", ""))

	if r.Original != "" {
		fmt.Fprintln(w, `\subsection*{Original}`)
		fmt.Fprintf(w, "\\[\n  %s\n\\]\n", r.OriginalLaTeX)
		fmt.Fprintln(w, `\subsection*{Simplified}`)
		fmt.Fprintf(w, "\\[\n  %s\n\\]\n", r.SimplifiedLaTeX)
	}
	if r.Result != nil {
		fmt.Fprintf(w, "\\noindent Result: $%d$ for $%s$\n\n", *r.Result, formatVars(r.Vars))
	}
	if r.Error != "" {
		fmt.Fprintf(w, "\\noindent Error: %s\n\n", latexEscape(r.Error))
	}

	fmt.Fprintln(w, `\end{document}`)
}

// WriteCheckText writes a check report in human-readable format.
func WriteCheckText(w io.Writer, r CheckReport) {
	fmt.Fprintln(w, "========== CHECK RESULT ==========")
	fmt.Fprintf(w, "Pool:       %s\n", r.Pool)
	fmt.Fprintf(w, "Seed:       %d\n", r.Seed)
	fmt.Fprintf(w, "Trees:      %d\n", r.Trees)
	fmt.Fprintf(w, "Rewritten:  %d\n", r.Rewritten)
	fmt.Fprintf(w, "Div by 0:   %d\n", r.DivisionByZero)
	fmt.Fprintf(w, "Nodes:      %d -> %d\n", r.NodesBefore, r.NodesAfter)
	fmt.Fprintf(w, "Failures:   %d\n", len(r.Failures))
	for i, f := range r.Failures {
		fmt.Fprintf(w, "  #%d [%s] %s | %s | %s\n", i+1, f.Property, f.Formula, formatVars(f.Vars), f.Detail)
	}
	fmt.Fprintln(w, "==================================")
}

// formatVars renders vars as "a=1, b=2" in name order.
func formatVars(vars expr.Vars) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, vars[name])
	}
	return strings.Join(parts, ", ")
}

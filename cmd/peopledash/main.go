package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/magnorodriguesch/RH-DASHBOARD/dataset"
	"github.com/magnorodriguesch/RH-DASHBOARD/engine"
	"github.com/magnorodriguesch/RH-DASHBOARD/export"
)

// ============================================================================
// PEOPLEDASH CLI — People analytics over a spreadsheet
// ============================================================================

const version = "1.0.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	filePath := flag.String("file", "BaseFuncionarios.xlsx", "Path to the employee spreadsheet (.xlsx or .csv)")
	department := flag.String("department", "", `Department filter ("all" or empty = no filter)`)
	level := flag.String("level", "", "Level filter")
	role := flag.String("role", "", "Role filter")
	status := flag.String("status", "", `Status filter: "Active" or "Terminated"`)
	minSalary := flag.String("min-salary", "", "Lower base salary bound (inclusive)")
	maxSalary := flag.String("max-salary", "", "Upper base salary bound (inclusive)")
	search := flag.String("search", "", "Case-insensitive name substring")
	format := flag.String("format", "text", "Output format: json, pretty, text, csv, xlsx")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `peopledash — people analytics over a spreadsheet

Usage:
  peopledash --file base.xlsx
  peopledash --file base.xlsx --department Sales --status Active
  peopledash --file base.xlsx --search ana --format json
  peopledash --file base.xlsx --department Ops --format csv --out filtered.csv

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Formats:
  text      Human-readable KPI summary (default)
  json      Full dashboard snapshot as JSON
  pretty    Pretty-printed JSON snapshot
  csv       Filtered rows as CSV
  xlsx      Filtered rows as a workbook
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("peopledash %s\n", version)
		os.Exit(0)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if !*verbose {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// ── Load ──────────────────────────────────────────────────────────────
	ds, err := dataset.Load(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// ── Filter ────────────────────────────────────────────────────────────
	params := engine.Params{
		Department: *department,
		Level:      *level,
		Role:       *role,
		Status:     *status,
		NameQuery:  *search,
	}
	params.SalaryMin = parseBound(*minSalary, "min-salary")
	params.SalaryMax = parseBound(*maxSalary, "max-salary")

	session := engine.NewSession(ds)
	session.SetParams(params)

	// ── Output ────────────────────────────────────────────────────────────
	var output []byte
	switch strings.ToLower(*format) {
	case "json":
		output, err = json.Marshal(session.Snapshot())
	case "pretty":
		output, err = json.MarshalIndent(session.Snapshot(), "", "  ")
	case "text":
		output = []byte(renderText(session))
	case "csv":
		output, err = export.CSV(session.View())
	case "xlsx":
		output, err = export.XLSX(session.View())
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", *format)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outFile != "" {
		if err := os.WriteFile(*outFile, output, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", *outFile, err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", *outFile, len(output))
		return
	}
	os.Stdout.Write(output)
	if len(output) > 0 && output[len(output)-1] != '\n' {
		fmt.Println()
	}
}

func parseBound(raw, name string) decimal.NullDecimal {
	if raw == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --%s %q\n", name, raw)
		os.Exit(1)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// renderText prints the KPI summary and the headline groups the way the
// dashboard's top row lays them out.
func renderText(session *engine.Session) string {
	snap := session.Snapshot()
	s := snap.Summary

	var b strings.Builder
	fmt.Fprintf(&b, "People Analytics — %d employees in view\n\n", s.HeadcountTotal)
	fmt.Fprintf(&b, "  Headcount (total):   %s\n", engine.FormatCount(s.HeadcountTotal))
	fmt.Fprintf(&b, "  Headcount (active):  %s\n", engine.FormatCount(s.HeadcountActive))
	fmt.Fprintf(&b, "  Hires this year:     %s\n", engine.FormatCount(s.HiresThisYear))
	fmt.Fprintf(&b, "  Terminations:        %s\n", engine.FormatCount(s.Terminations))
	fmt.Fprintf(&b, "  Annual payroll:      %s\n", s.AnnualPayroll)
	fmt.Fprintf(&b, "  Mean salary:         %s\n", s.MeanSalary)
	fmt.Fprintf(&b, "  Mean age:            %s\n", s.MeanAge)
	fmt.Fprintf(&b, "  Gender (M/F/?):      %d / %d / %d\n",
		s.Gender.Male, s.Gender.Female, s.Gender.Unknown)

	if snap.RoleHeadcount != nil && len(snap.RoleHeadcount.Series) > 0 {
		fmt.Fprintf(&b, "\n%s\n", snap.RoleHeadcount.Title)
		for _, p := range snap.RoleHeadcount.Series[0].Data {
			fmt.Fprintf(&b, "  %-30s %s\n", p.Label, engine.FormatCount(int(p.Value)))
		}
	}
	if snap.Regions != nil && len(snap.Regions.Series) > 0 {
		fmt.Fprintf(&b, "\n%s\n", snap.Regions.Title)
		for _, p := range snap.Regions.Series[0].Data {
			fmt.Fprintf(&b, "  %-6s %s\n", p.Label, engine.FormatCount(int(p.Value)))
		}
	}
	return b.String()
}

// Command thesis-eval is the batch companion to thesisd: it extracts
// title-page fields from a text file, converts scores to grades, and renders
// evaluation workbooks from saved session files, all without a server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/DriesFaems/thesis--evaluation/internal/export"
	"github.com/DriesFaems/thesis--evaluation/internal/grading"
	"github.com/DriesFaems/thesis--evaluation/internal/session"
	"github.com/DriesFaems/thesis--evaluation/internal/titlepage"
)

func main() {
	var (
		textPath      = flag.String("text", "", "title page text file to extract fields from")
		thesisPoints  = flag.Float64("thesis", -1, "written thesis points (0-100)")
		defensePoints = flag.Float64("defense", -1, "defense points (0-100)")
		sessionPath   = flag.String("session", "", "saved session JSON to render")
		outPath       = flag.String("out", "", "output .xlsx path for -session")
		part          = flag.Int("part", 1, "workbook part to render (1 or 2)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	switch {
	case *textPath != "":
		if err := runExtract(*textPath); err != nil {
			fatal(err)
		}
	case *sessionPath != "":
		if err := runRender(logger, *sessionPath, *outPath, *part); err != nil {
			fatal(err)
		}
	case *thesisPoints >= 0 && *defensePoints >= 0:
		runGrades(*thesisPoints, *defensePoints)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runExtract(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	rec := titlepage.Parse(string(raw))
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func runGrades(thesis, defense float64) {
	result := grading.WeightedGrade(thesis, defense)
	fmt.Printf("Written Thesis:  %v / 100   grade %v   weighted %v / 75\n",
		thesis, result.ThesisGrade, result.WeightedThesis)
	fmt.Printf("Thesis Defense:  %v / 100   grade %v   weighted %v / 25\n",
		defense, result.DefenseGrade, result.WeightedDefense)
	passed := "no"
	if grading.Passed(defense) {
		passed = "yes"
	}
	fmt.Printf("Defense passed (min. 50): %s\n", passed)
	fmt.Printf("Overall:         %v / 100   grade %v\n",
		result.CombinedPoints, result.CombinedGrade)
}

func runRender(logger *slog.Logger, sessionPath, outPath string, part int) error {
	if outPath == "" {
		return fmt.Errorf("-out is required with -session")
	}
	data, err := os.ReadFile(sessionPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", sessionPath, err)
	}
	ev, err := session.Load(data)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	svc := export.NewService(logger)
	var workbook []byte
	switch part {
	case 1:
		workbook, err = svc.BuildPart1Workbook(ev)
	case 2:
		workbook, err = svc.BuildPart2Workbook(ev)
	default:
		return fmt.Errorf("part must be 1 or 2, got %d", part)
	}
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	if err := os.WriteFile(outPath, workbook, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/DriesFaems/thesis--evaluation/internal/entity"
	"github.com/DriesFaems/thesis--evaluation/internal/session"
)

func testEvaluation() *entity.Evaluation {
	ev := session.Defaults()
	ev.StudentName = "Max Mustermann"
	ev.StudentID = "12345678"
	ev.ThesisTitle = "A Study of Something"
	ev.SubmissionDate = "January 5, 2024"
	ev.ThesisPoints = 82
	ev.DefensePoints = 70
	ev.Topics[0] = "Research design"
	ev.Answers[0] = "convincing"
	return ev
}

func TestBuildPart1Workbook(t *testing.T) {
	svc := NewService(nil)

	data, err := svc.BuildPart1Workbook(testEvaluation())
	if err != nil {
		t.Fatalf("BuildPart1Workbook failed: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook not readable: %v", err)
	}
	defer f.Close()

	const sheet = "Part 1 - Thesis"
	if idx, _ := f.GetSheetIndex(sheet); idx == -1 {
		t.Fatalf("sheet %q missing, sheets: %v", sheet, f.GetSheetList())
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if !containsCell(rows, "Max Mustermann") {
		t.Error("student name missing from Part 1 workbook")
	}
	if !containsCell(rows, "A Study of Something") {
		t.Error("thesis title missing from Part 1 workbook")
	}
	if !containsCell(rows, "Selection and knowledge of the topic") {
		t.Error("criteria grid missing from Part 1 workbook")
	}
}

func TestBuildPart2Workbook(t *testing.T) {
	svc := NewService(nil)

	data, err := svc.BuildPart2Workbook(testEvaluation())
	if err != nil {
		t.Fatalf("BuildPart2Workbook failed: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook not readable: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Part 2 - Defense")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if !containsCell(rows, "Research design") {
		t.Error("defense topic missing from Part 2 workbook")
	}
	// 70 defense points clear the 50-point minimum.
	if !containsSubstring(rows, "Passed? Yes") {
		t.Error("pass marker missing from combined result")
	}
}

func containsCell(rows [][]string, want string) bool {
	for _, row := range rows {
		for _, cell := range row {
			if cell == want {
				return true
			}
		}
	}
	return false
}

func containsSubstring(rows [][]string, want string) bool {
	for _, row := range rows {
		for _, cell := range row {
			if strings.Contains(cell, want) {
				return true
			}
		}
	}
	return false
}

// Package export renders evaluation documents as XLSX workbooks: the Part 1
// written-thesis form and the Part 2 defense protocol. The services return
// bytes; writing files is the caller's business.
package export

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/DriesFaems/thesis--evaluation/constants"
	"github.com/DriesFaems/thesis--evaluation/internal/entity"
	"github.com/DriesFaems/thesis--evaluation/internal/grading"
)

// Service renders evaluation workbooks.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

const (
	labelFill  = "DEEAF1"
	resultFill = "FFF2CC"
)

// BuildPart1Workbook renders the written-thesis evaluation form.
func (s *Service) BuildPart1Workbook(ev *entity.Evaluation) ([]byte, error) {
	grades := grading.WeightedGrade(ev.ThesisPoints, ev.DefensePoints)

	f := excelize.NewFile()
	const sheet = "Part 1 - Thesis"
	w := newSheetWriter(f, sheet)

	w.heading("Master Thesis Evaluation")
	w.blank()
	w.pair("Student Name", ev.StudentName, "Student ID", ev.StudentID)
	w.labeled("Thesis Title", ev.ThesisTitle)
	w.pair("Submission Date", ev.SubmissionDate, "First Supervisor", ev.FirstSupervisor)
	w.labeled("Second Supervisor", ev.SecondSupervisor)
	w.blank()

	w.heading("Evaluation Criteria")
	w.header3("Criterion", "Grade Level", "Comments")
	for i, c := range ev.Criteria {
		label := criterionLabel(ev, i)
		w.row3(label, c.GradeLevel, c.Comments)
	}
	w.blank()

	w.labeled("General Comments", ev.GeneralCommentsP1)
	w.blank()

	w.heading("Result")
	w.pair("Points", fmt.Sprintf("%v / 100", ev.ThesisPoints),
		"Grade", fmt.Sprintf("%v", grades.ThesisGrade))
	w.labeled(fmt.Sprintf("Weighted (x%.2f)", constants.ThesisWeight),
		fmt.Sprintf("%v / 75", grades.WeightedThesis))

	if grades.ThesisGrade == grading.FailGrade {
		w.blank()
		w.heading("Third Assessor")
		w.labeled("Decision", ev.ThirdAssessorDecision)
		w.labeled("Proposed Grade", ev.ThirdAssessorProposedGrade)
	}

	w.blank()
	w.blank()
	w.labeled("Signature First Supervisor", "")
	w.labeled("Signature Second Supervisor", "")

	if err := w.finish(); err != nil {
		return nil, err
	}
	s.logger.Info("export.part1", "student_id", ev.StudentID, "thesis_grade", grades.ThesisGrade)
	return workbookBytes(f)
}

// BuildPart2Workbook renders the defense protocol and the combined result.
func (s *Service) BuildPart2Workbook(ev *entity.Evaluation) ([]byte, error) {
	grades := grading.WeightedGrade(ev.ThesisPoints, ev.DefensePoints)

	f := excelize.NewFile()
	const sheet = "Part 2 - Defense"
	w := newSheetWriter(f, sheet)

	w.heading("Master Thesis Defense")
	w.blank()
	w.pair("Student Name", ev.StudentName, "Student ID", ev.StudentID)
	w.labeled("Thesis Title", ev.ThesisTitle)
	w.pair("Defense Date", ev.DefenseDate, "Program", ev.DefenseProgram)
	w.pair("Time", fmt.Sprintf("%s - %s", ev.DefenseTimeStart, ev.DefenseTimeEnd),
		"Mode", ev.DefenseMode)
	w.pair("Location / Link", ev.DefenseLocationLink, "Group work?", ev.DefenseGroupWork)
	w.pair("First Examiner", ev.DefenseFirstExaminer, "Second Examiner", ev.DefenseSecondExaminer)
	w.blank()

	w.heading("Topics and Answers")
	w.header3("#", "Topic", "Evaluation of Answers")
	for i := 0; i < constants.NumDefenseTopics; i++ {
		topic, answer := "", ""
		if i < len(ev.Topics) {
			topic = ev.Topics[i]
		}
		if i < len(ev.Answers) {
			answer = ev.Answers[i]
		}
		w.row3(fmt.Sprintf("%d", i+1), topic, answer)
	}
	w.blank()

	w.labeled("Special Circumstances", ev.SpecialCircumstances)
	w.blank()

	w.heading("Evaluation of Thesis Defense")
	w.pair("Points", fmt.Sprintf("%v / 100", ev.DefensePoints),
		"Grade", fmt.Sprintf("%v", grades.DefenseGrade))
	w.labeled(fmt.Sprintf("Weighted (x%.2f)", constants.DefenseWeight),
		fmt.Sprintf("%v / 25", grades.WeightedDefense))
	w.blank()

	passed := "No"
	if grading.Passed(ev.DefensePoints) {
		passed = "Yes"
	}
	w.heading("Evaluation of the Master Thesis (Overall)")
	w.labeled("Written Thesis",
		fmt.Sprintf("%v / 100    (Weighted: %v / 75)", ev.ThesisPoints, grades.WeightedThesis))
	w.labeled("Thesis Defense",
		fmt.Sprintf("%v / 100    (Weighted: %v / 25)    Passed? %s  (min. 50%% required)",
			ev.DefensePoints, grades.WeightedDefense, passed))
	w.result("Overall Result (75% Thesis + 25% Defense)",
		fmt.Sprintf("%v / 100    Grade: %v", grades.CombinedPoints, grades.CombinedGrade))

	w.blank()
	w.blank()
	w.labeled("Signature First Supervisor", "")
	w.labeled("Signature Second Supervisor", "")

	if err := w.finish(); err != nil {
		return nil, err
	}
	s.logger.Info("export.part2", "student_id", ev.StudentID, "combined_grade", grades.CombinedGrade)
	return workbookBytes(f)
}

func criterionLabel(ev *entity.Evaluation, i int) string {
	if i == constants.NumCriteria-1 && ev.Criterion9Label != "" {
		return ev.Criterion9Label
	}
	if i < len(constants.CriteriaLabels) {
		return constants.CriteriaLabels[i]
	}
	return ""
}

func workbookBytes(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

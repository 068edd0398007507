package entity

import (
	"time"

	"github.com/google/uuid"
)

// Criterion is one row of the Part 1 evaluation grid.
type Criterion struct {
	GradeLevel string `json:"grade_level"`
	Comments   string `json:"comments"`
}

// Evaluation carries the full editable state of one thesis evaluation:
// the fields pre-filled from the title page, the Part 1 written-thesis
// assessment and the Part 2 defense protocol. The JSON tags are the exact
// keys of the saved-session format and must stay stable.
type Evaluation struct {
	ID        uuid.UUID `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Title-page fields (suggestions from extraction, editable).
	StudentName    string `json:"student_name"`
	StudentID      string `json:"student_id"`
	ThesisTitle    string `json:"thesis_title"`
	SubmissionDate string `json:"submission_date"`

	// Part 1: written thesis.
	FirstSupervisor   string      `json:"first_supervisor"`
	SecondSupervisor  string      `json:"second_supervisor"`
	ThesisPoints      float64     `json:"thesis_points"`
	Criteria          []Criterion `json:"criteria"`
	Criterion9Label   string      `json:"criterion_9_label"`
	GeneralCommentsP1 string      `json:"general_comments_p1"`

	// Third assessor block (only relevant when the thesis grade is 5.0).
	ThirdAssessorDecision      string `json:"third_assessor_decision"`
	ThirdAssessorProposedGrade string `json:"third_assessor_proposed_grade"`

	// Part 2: defense.
	DefenseDate           string   `json:"defense_date"`
	DefenseProgram        string   `json:"defense_program"`
	DefenseTimeStart      string   `json:"defense_time_start"`
	DefenseTimeEnd        string   `json:"defense_time_end"`
	DefenseMode           string   `json:"defense_mode"`
	DefenseLocationLink   string   `json:"defense_location_link"`
	DefenseFirstExaminer  string   `json:"defense_first_examiner"`
	DefenseSecondExaminer string   `json:"defense_second_examiner"`
	DefenseGroupWork      string   `json:"defense_group_work"`
	Topics                []string `json:"topics"`
	Answers               []string `json:"answers"`
	SpecialCircumstances  string   `json:"special_circumstances"`
	DefensePoints         float64  `json:"defense_points"`
}

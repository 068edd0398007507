package export

import (
	"github.com/xuri/excelize/v2"
)

// sheetWriter appends rows to a single sheet, keeping track of the current
// row and collecting the first cell error instead of checking every call.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
	err   error
}

func newSheetWriter(f *excelize.File, sheet string) *sheetWriter {
	w := &sheetWriter{f: f, sheet: sheet, row: 1}
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			w.err = err
			return w
		}
	}
	if idx, err := f.GetSheetIndex(sheet); err == nil {
		f.SetActiveSheet(idx)
	}
	// Drop the default sheet if it is not ours.
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}
	w.setColumnWidths()
	return w
}

func (w *sheetWriter) setColumnWidths() {
	w.set(func() error { return w.f.SetColWidth(w.sheet, "A", "A", 34) })
	w.set(func() error { return w.f.SetColWidth(w.sheet, "B", "B", 28) })
	w.set(func() error { return w.f.SetColWidth(w.sheet, "C", "C", 24) })
	w.set(func() error { return w.f.SetColWidth(w.sheet, "D", "D", 28) })
}

func (w *sheetWriter) set(fn func() error) {
	if w.err != nil {
		return
	}
	w.err = fn()
}

func (w *sheetWriter) cell(col int, v any) {
	w.set(func() error {
		name, err := excelize.CoordinatesToCellName(col, w.row)
		if err != nil {
			return err
		}
		return w.f.SetCellValue(w.sheet, name, v)
	})
}

func (w *sheetWriter) styledCell(col int, fill string, bold bool) {
	w.set(func() error {
		style, err := w.f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: bold},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}},
		})
		if err != nil {
			return err
		}
		name, err := excelize.CoordinatesToCellName(col, w.row)
		if err != nil {
			return err
		}
		return w.f.SetCellStyle(w.sheet, name, name, style)
	})
}

// heading writes a bold section title on its own row.
func (w *sheetWriter) heading(text string) {
	w.cell(1, text)
	w.styledCell(1, "FFFFFF", true)
	w.row++
}

// labeled writes a shaded label in column A and its value in column B.
func (w *sheetWriter) labeled(label, value string) {
	w.cell(1, label)
	w.styledCell(1, labelFill, true)
	w.cell(2, value)
	w.row++
}

// result writes a label/value row with the highlighted result shading.
func (w *sheetWriter) result(label, value string) {
	w.cell(1, label)
	w.styledCell(1, labelFill, true)
	w.cell(2, value)
	w.styledCell(2, resultFill, false)
	w.row++
}

// pair writes two label/value columns on one row.
func (w *sheetWriter) pair(label1, value1, label2, value2 string) {
	w.cell(1, label1)
	w.styledCell(1, labelFill, true)
	w.cell(2, value1)
	w.cell(3, label2)
	w.styledCell(3, labelFill, true)
	w.cell(4, value2)
	w.row++
}

// header3 writes a three-column shaded header row.
func (w *sheetWriter) header3(a, b, c string) {
	w.cell(1, a)
	w.cell(2, b)
	w.cell(3, c)
	for col := 1; col <= 3; col++ {
		w.styledCell(col, labelFill, true)
	}
	w.row++
}

// row3 writes a plain three-column row.
func (w *sheetWriter) row3(a, b, c string) {
	w.cell(1, a)
	w.cell(2, b)
	w.cell(3, c)
	w.row++
}

func (w *sheetWriter) blank() {
	w.row++
}

func (w *sheetWriter) finish() error {
	return w.err
}

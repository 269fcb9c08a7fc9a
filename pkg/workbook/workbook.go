// Package workbook is the durable side of the POS data store: a single
// Excel workbook holding one sheet per table. The file is opened and
// closed per call, never held across requests, so an external program
// holding it open surfaces as ErrLocked instead of a hang.
package workbook

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrLocked means the workbook file is exclusively held by another
// process (typically open for editing). Retryable by the user.
var ErrLocked = errors.New("the data workbook is open in another program. Please close it and try again")

// placeholderSheet briefly exists while the only sheet in a file is
// being replaced; it never survives a successful save.
const placeholderSheet = "__staging"

// WriteError wraps any other I/O failure during a flush. The in-memory
// cache may already be ahead of the file when this is returned; there is
// no write-ahead log, the next successful flush reconverges.
type WriteError struct {
	Cause error
}

func (e *WriteError) Error() string {
	return "workbook write error: " + e.Cause.Error()
}

func (e *WriteError) Unwrap() error { return e.Cause }

// Sheet describes one table section of the workbook.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// Load reads all data rows of one sheet, header row excluded. A missing
// file returns the underlying *PathError (errors.Is fs.ErrNotExist); a
// missing sheet in an existing file reads as empty.
func Load(path, sheet string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, classify(err)
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex(sheet); idx == -1 {
		return nil, nil
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, classify(err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

// ReplaceSheet rewrites one sheet wholesale, leaving every other sheet in
// the file untouched. This is the flush primitive: cost is proportional
// to the full table, which is fine at single-shop volume.
func ReplaceSheet(path string, sheet Sheet) error {
	var f *excelize.File

	if _, statErr := os.Stat(path); statErr == nil {
		opened, err := excelize.OpenFile(path)
		if err != nil {
			return classify(err)
		}
		f = opened
	} else {
		f = excelize.NewFile()
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex(sheet.Name); idx != -1 {
		// excelize refuses to drop the last remaining sheet, so park a
		// placeholder when the target is the only one.
		placeholder := len(f.GetSheetList()) == 1
		if placeholder {
			if _, err := f.NewSheet(placeholderSheet); err != nil {
				return classify(err)
			}
		}
		if err := f.DeleteSheet(sheet.Name); err != nil {
			return classify(err)
		}
		if err := writeSheet(f, sheet); err != nil {
			return err
		}
		if placeholder {
			f.DeleteSheet(placeholderSheet)
		}
	} else if err := writeSheet(f, sheet); err != nil {
		return err
	}

	// Drop excelize's default sheet if it is still around from NewFile.
	if sheet.Name != "Sheet1" {
		if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 && len(f.GetSheetList()) > 1 {
			f.DeleteSheet("Sheet1")
		}
	}

	if err := f.SaveAs(path); err != nil {
		return classify(err)
	}
	return nil
}

// Init creates the workbook with the given sheets (headers plus any seed
// rows). An existing file is left alone unless force is set, so re-running
// initialization never destroys shop data by accident. Reports whether a
// new file was written.
func Init(path string, force bool, sheets []Sheet) (bool, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return false, nil
	}

	f := excelize.NewFile()
	defer f.Close()

	for _, sheet := range sheets {
		if err := writeSheet(f, sheet); err != nil {
			return false, err
		}
	}
	if len(sheets) > 0 {
		f.DeleteSheet("Sheet1")
		if idx, err := f.GetSheetIndex(sheets[0].Name); err == nil {
			f.SetActiveSheet(idx)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return false, classify(err)
	}
	return true, nil
}

func writeSheet(f *excelize.File, sheet Sheet) error {
	if _, err := f.NewSheet(sheet.Name); err != nil {
		return classify(err)
	}

	header := make([]interface{}, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return classify(err)
	}

	for i, row := range sheet.Rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return classify(err)
		}
	}
	return nil
}

// classify maps a raw excelize/OS error onto the store's error taxonomy:
// exclusive-lock failures become ErrLocked, everything else a WriteError.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, os.ErrPermission) || isSharingViolation(err) {
		return fmt.Errorf("%w (%v)", ErrLocked, err)
	}
	return &WriteError{Cause: err}
}

// isSharingViolation catches the Windows flavor of an exclusively-held
// file, which does not surface as os.ErrPermission.
func isSharingViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "used by another process") ||
		strings.Contains(msg, "sharing violation")
}

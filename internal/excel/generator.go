package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/vendor-onboarding/internal/confirmation"
)

const summarySheet = "Submission"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate writes the confirmation page as a workbook: a summary sheet with
// the common fields and one sheet for the offering's detail block.
func (g *Generator) Generate(page confirmation.Page) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := g.writeSummary(file, summarySheet, page); err != nil {
		return nil, err
	}

	if page.Found && len(page.Details) > 0 {
		sheetName := sanitizeSheetName(page.DetailTitle)
		if _, err := file.NewSheet(sheetName); err != nil {
			return nil, err
		}
		if err := g.writeLines(file, sheetName, 1, page.Details); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, page confirmation.Page) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	if !page.Found {
		set("A1", page.Message)
		_ = file.SetColWidth(sheet, "A", "A", 50)
		return nil
	}

	set("A1", "Request Number")
	set("B1", page.RequestNumber)
	set("A2", "Request Sys ID")
	set("B2", page.RequestSysID)

	if err := g.writeLines(file, sheet, 4, page.Common); err != nil {
		return err
	}

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 45)
	return nil
}

func (g *Generator) writeLines(file *excelize.File, sheet string, startRow int, lines []confirmation.Line) error {
	for i, line := range lines {
		row := startRow + i
		if err := file.SetCellValue(sheet, fmt.Sprintf("A%d", row), line.Label); err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.Value); err != nil {
			return err
		}
	}
	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 45)
	return nil
}

func sanitizeSheetName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Details"
	}

	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = strings.TrimSpace(replacer.Replace(value))
	if value == "" || value == summarySheet {
		return "Details"
	}
	if len(value) > 31 {
		value = value[:31]
	}
	return value
}

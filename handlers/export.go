package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/khasmak/api/config"
	"github.com/khasmak/api/models"
	"github.com/xuri/excelize/v2"
)

// exportHeaders is the fixed column set of the archive export, in the order
// the reviewers' spreadsheet has always used.
var exportHeaders = []string{
	"تاريخ التقرير",
	"مقدم من",
	"جهة العمل",
	"اسم المقاول",
	"اسم العقد",
	"بند العمل",
	"بيان العمل",
	"الفئة",
	"الكمية",
	"الإجمالي",
	"بالخصم علي",
	"ما يوازي بالمتر",
	"الحالة",
	"تاريخ المراجعة",
	"تمت المراجعة بواسطة",
	"ملاحظات المقاول",
}

// BuildExportRows flattens submissions to one row per deduction, matching
// exportHeaders positionally. Money columns carry two decimals; blank
// optional fields render as "--".
func BuildExportRows(subs []models.Submission) [][]string {
	rows := [][]string{}
	for _, sub := range subs {
		for _, c := range sub.Contractors {
			for _, d := range c.Deductions {
				rows = append(rows, []string{
					sub.Timestamp,
					sub.UserEmail,
					string(sub.Company),
					c.ContractorName,
					d.ContractName,
					d.ItemName,
					d.WorkDescription,
					fmt.Sprintf("%.2f", d.UnitPrice.Float()),
					d.Quantity.String(),
					fmt.Sprintf("%.2f", d.Total()),
					orDash(d.PersonName),
					meterEquivalent(d),
					d.Status,
					orDash(d.StatusUpdateTimestamp),
					orDash(d.ReviewedBy),
					orDash(c.Notes),
				})
			}
		}
	}
	return rows
}

func orDash(s string) string {
	if s == "" {
		return "--"
	}
	return s
}

func meterEquivalent(d models.Deduction) string {
	if d.MeterEquivalentValue.Float() == 0 {
		return "--"
	}
	return fmt.Sprintf("%s %s", d.MeterEquivalentValue.String(), d.MeterEquivalentUnit)
}

// ExportSubmissions downloads the filtered archive as a spreadsheet. The
// same user/from/to filters as the listing apply; format is xlsx (default)
// or csv.
func ExportSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := AllSubmissions(config.DB)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	subs, err = applyQueryFilters(subs, r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	rows := BuildExportRows(subs)
	stamp := time.Now().Format("20060102_150405")

	if r.URL.Query().Get("format") == "csv" {
		csvData, err := createCSVFile(rows)
		if err != nil {
			http.Error(w, "Failed to generate CSV file", http.StatusInternalServerError)
			return
		}
		filename := fmt.Sprintf("Khasmak_Reports_%s.csv", stamp)
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(csvData)))
		w.WriteHeader(http.StatusOK)
		w.Write(csvData)
		return
	}

	excelFile, err := createExcelFile(rows)
	if err != nil {
		http.Error(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}
	buffer, err := excelFile.WriteToBuffer()
	if err != nil {
		http.Error(w, "Failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("Khasmak_Reports_%s.xlsx", stamp)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// createExcelFile renders the flattened rows under a styled header row.
func createExcelFile(rows [][]string) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "التقارير"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Size:  12,
			Color: "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#1F4E78"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for colIdx, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	// column widths: at least 15, widened to the longest cell
	for colIdx, header := range exportHeaders {
		maxLength := len([]rune(header))
		for _, row := range rows {
			if l := len([]rune(row[colIdx])); l > maxLength {
				maxLength = l
			}
		}
		width := float64(maxLength + 2)
		if width < 15 {
			width = 15
		}
		col := columnIndexToLetter(colIdx + 1)
		f.SetColWidth(sheetName, col, col, width)
	}

	f.DeleteSheet("Sheet1")

	return f, nil
}

// createCSVFile renders the same rows as CSV, headers first.
func createCSVFile(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	writer.Write(exportHeaders)
	for _, row := range rows {
		writer.Write(row)
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}

func columnIndexToLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+(col%26))) + result
		col /= 26
	}
	return result
}

package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"bookvault/internal/middleware"
	"bookvault/internal/service"
	"bookvault/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler streams the caller's collection as CSV or XLSX.
type ExportHandler struct {
	Books *service.BookService
}

func NewExportHandler(books *service.BookService) *ExportHandler {
	return &ExportHandler{Books: books}
}

var exportHeaders = []string{"Title", "Author", "Year", "Description", "Cover URL", "Added"}

// ExportCSV 导出书籍为 CSV
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	books, err := h.Books.List(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"books_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// UTF-8 BOM so Excel detects the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer.Write(exportHeaders)
	for _, b := range books {
		writer.Write([]string{
			b.Title,
			b.Author,
			strconv.Itoa(b.Year),
			b.Description,
			b.CoverImageURL,
			b.CreatedAt.Format("2006-01-02"),
		})
	}
}

// ExportXLSX 导出书籍为 XLSX
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	books, err := h.Books.List(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Books"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create sheet failed")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx, b := range books {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), b.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), b.Author)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), b.Year)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), b.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), b.CoverImageURL)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), b.CreatedAt.Format("2006-01-02"))
	}

	f.SetColWidth(sheetName, "A", "A", 30)
	f.SetColWidth(sheetName, "B", "B", 20)
	f.SetColWidth(sheetName, "C", "C", 8)
	f.SetColWidth(sheetName, "D", "D", 40)
	f.SetColWidth(sheetName, "E", "E", 40)
	f.SetColWidth(sheetName, "F", "F", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"books_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}

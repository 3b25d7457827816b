package handler

import (
	"path/filepath"
	"strings"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// MaxPDFSize caps a single upload at 20 MB
const MaxPDFSize = 20 << 20

func ListPDFsHandler(c *gin.Context, pdfService *usecase.PDFService) {
	userID := c.GetString("user_id")

	pdfs, err := pdfService.ListPDFs(c.Request.Context(), userID, topicIDParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]gin.H, 0, len(pdfs))
	for _, pdf := range pdfs {
		items = append(items, gin.H{
			"id":         pdf.ID,
			"pdf_url":    pdf.PDFURL,
			"file_name":  utils.FileNameFromURL(pdf.PDFURL),
			"created_at": pdf.CreatedAt,
		})
	}
	utils.Success(c, gin.H{"pdfs": items})
}

func UploadPDFHandler(c *gin.Context, pdfService *usecase.PDFService) {
	userID := c.GetString("user_id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "Missing file")
		return
	}
	if fileHeader.Size > MaxPDFSize {
		utils.BadRequest(c, "File too large")
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		utils.BadRequest(c, "Only PDF files are accepted")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequest(c, "Failed to read file")
		return
	}
	defer file.Close()

	pdf, err := pdfService.UploadPDF(c.Request.Context(), userID, topicIDParam(c), fileHeader.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, pdf)
}

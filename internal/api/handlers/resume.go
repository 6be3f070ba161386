package handlers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"jobquest-utils/internal/config"
	"jobquest-utils/internal/logging"
	"jobquest-utils/internal/resume"
	"jobquest-utils/pkg/models"
	"jobquest-utils/pkg/utils"

	"github.com/labstack/echo/v4"
)

// ResumeParseHandler accepts a multipart PDF upload and returns the
// extracted text preview and recognized skills
func ResumeParseHandler(cfg *config.Config, parser *resume.Parser) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			logger.Error("Missing resume file", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "missing_file",
				Message:   "A PDF file is required in the 'file' form field",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if fileHeader.Size > cfg.Resume.MaxUploadSize {
			return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Error:     "file_too_large",
				Message:   "Uploaded file exceeds the maximum allowed size",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "unsupported_file_type",
				Message:   "Only PDF files are supported",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		file, err := fileHeader.Open()
		if err != nil {
			logger.Error("Failed to open upload", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "upload_read_failed",
				Message:   "Failed to read uploaded file",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, cfg.Resume.MaxUploadSize))
		if err != nil {
			logger.Error("Failed to read upload", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "upload_read_failed",
				Message:   "Failed to read uploaded file",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		parsed, err := parser.Parse(data)
		if err != nil {
			logger.Error("Resume parsing failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Error:     "parse_failed",
				Message:   utils.NewResumeParseError(err.Error()).Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Resume parsed", map[string]interface{}{
			"filename":        fileHeader.Filename,
			"skills_found":    len(parsed.Skills),
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, parsed)
	}
}

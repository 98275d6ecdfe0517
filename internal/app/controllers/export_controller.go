package controllers

import (
	"encoding/csv"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/registrar/internal/app/services"
	"github.com/campushq/registrar/internal/pkg/apperrors"
)

const exportFilename = "candidates_report.csv"

// ExportController streams the student roster as a CSV download.
type ExportController struct {
	exportService services.ExportService
	logger        zerolog.Logger
}

// NewExportController creates a new ExportController.
func NewExportController(exportService services.ExportService, logger zerolog.Logger) *ExportController {
	return &ExportController{
		exportService: exportService,
		logger:        logger,
	}
}

// ExportStudentsCSV writes the full roster as an attachment.
func (ctrl *ExportController) ExportStudentsCSV(c *gin.Context) {
	rows, err := ctrl.exportService.StudentsCSV(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseUnresolved) {
			ctrl.logger.Error().Err(err).Msg("Export found a student with a missing course")
			redirectWithError(c, "/students/", "Export failed: a student references a missing course.")
			return
		}
		ctrl.logger.Error().Err(err).Msg("Export failed")
		redirectWithError(c, "/students/", "Could not export students.")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	c.Status(http.StatusOK)

	writer := csv.NewWriter(c.Writer)
	if err := writer.WriteAll(rows); err != nil {
		ctrl.logger.Error().Err(err).Msg("Failed to write CSV response")
	}
}

package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/api/http/respond"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/summary/domain"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/summary/service"
)

type SummaryProvider interface {
	ProjectSummary(ctx context.Context, projectID int64) (*domain.Summary, error)
	AllSummaries(ctx context.Context) ([]domain.Summary, error)
}

type Handler struct {
	summaries SummaryProvider
}

func New(summaries SummaryProvider) *Handler {
	return &Handler{summaries: summaries}
}

// Register mounts the CSV export routes. They are public.
func (h *Handler) Register(rg gin.IRouter) {
	rg.GET("/get-summary/:project_id", h.project)
	rg.GET("/get-summary", h.all)
}

func (h *Handler) project(c *gin.Context) {
	projectID, err := respond.PathID(c, "project_id")
	if err != nil {
		respond.Error(c, "project_summary", err)
		return
	}

	s, err := h.summaries.ProjectSummary(c.Request.Context(), projectID)
	if err != nil {
		respond.Error(c, "project_summary", err)
		return
	}

	writeCSV(c, fmt.Sprintf("project-%d-summary.csv", projectID), []domain.Summary{*s})
}

func (h *Handler) all(c *gin.Context) {
	sums, err := h.summaries.AllSummaries(c.Request.Context())
	if err != nil {
		respond.Error(c, "all_summaries", err)
		return
	}

	writeCSV(c, "projects-summary.csv", sums)
}

// writeCSV renders into memory first so a failure can still produce a JSON error.
func writeCSV(c *gin.Context, filename string, sums []domain.Summary) {
	var buf bytes.Buffer
	if err := service.WriteCSV(&buf, sums); err != nil {
		respond.Error(c, "write_csv", apperr.Internal(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

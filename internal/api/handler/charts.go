package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/planviz/planviz/internal/api/response"
	"github.com/planviz/planviz/internal/chart"
	"github.com/planviz/planviz/internal/domain"
	"github.com/planviz/planviz/internal/render"
)

var contentTypes = map[string]string{
	"svg": "image/svg+xml",
	"png": "image/png",
	"pdf": "application/pdf",
}

// ChartHandler serves rendered charts from a fixed source.
type ChartHandler struct {
	svc *chart.Service
	src chart.Source
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(svc *chart.Service, src chart.Source) *ChartHandler {
	return &ChartHandler{svc: svc, src: src}
}

// Gantt serves the Gantt chart.
func (h *ChartHandler) Gantt(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "Project Schedule", h.svc.GanttDrawing)
}

// Milestones serves the milestone timeline.
func (h *ChartHandler) Milestones(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "Milestone Timeline", h.svc.MilestoneDrawing)
}

// WBS serves the work-breakdown-structure diagram.
func (h *ChartHandler) WBS(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "Work Breakdown Structure", h.svc.WBSDrawing)
}

func (h *ChartHandler) serve(w http.ResponseWriter, r *http.Request,
	defaultTitle string,
	build func(context.Context, chart.Source, string) (*render.Drawing, error),
) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "svg"
	}
	if !render.ValidFormat(format) {
		response.JSON(w, http.StatusBadRequest, response.ErrorResponse{
			Error: response.ErrorBody{
				Code:    string(domain.ErrCodeRenderFailed),
				Message: fmt.Sprintf("unsupported format %q", format),
			},
		})
		return
	}

	title := r.URL.Query().Get("title")
	if title == "" {
		title = defaultTitle
	}

	d, err := build(r.Context(), h.src, title)
	if err != nil {
		response.Error(w, err)
		return
	}

	var buf bytes.Buffer
	if err := render.Encode(d, format, &buf); err != nil {
		response.Error(w, domain.NewRenderError(format, err))
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

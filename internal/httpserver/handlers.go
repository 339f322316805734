package httpserver

import (
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tinytelemetry/accelboard/internal/chart"
	"github.com/tinytelemetry/accelboard/internal/dashboard"
	"github.com/tinytelemetry/accelboard/internal/model"
)

const displayTimeLayout = "2006-01-02 15:04:05"

// previewColumns is the column order of the preview table.
var previewColumns = []string{"timestamp", "x", "y", "z"}

var funcMap = template.FuncMap{
	"cell": formatCell,
}

type indexPage struct {
	Title    string
	InputID  string
	Axes     []model.Axis
	Selected model.Axis
	Columns  []string
	Rows     []map[string]any
	PageSize int
	Chart    template.HTML
	Initial  gin.H
}

type updateRequest struct {
	Input string `json:"input"`
	Value string `json:"value" binding:"required"`
}

type updateResponse struct {
	Figure model.ChartSpec   `json:"figure"`
	SVG    string            `json:"svg"`
	Data   []map[string]any `json:"data"`
}

func (s *Server) handleIndex(c *gin.Context) {
	axis := model.DefaultAxis
	if raw := c.Query("axis"); raw != "" {
		parsed, err := model.ParseAxis(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		axis = parsed
	}

	res := s.binding.Apply(axis)
	rows := displayRecords(res.Records)

	c.HTML(http.StatusOK, "index.html.tmpl", indexPage{
		Title:    s.dash.Title(),
		InputID:  s.binding.Input(),
		Axes:     model.Axes(),
		Selected: axis,
		Columns:  previewColumns,
		Rows:     rows,
		PageSize: s.pageSize,
		Chart:    template.HTML(s.renderChart(res.Chart)),
		Initial:  gin.H{"data": rows, "pageSize": s.pageSize, "input": s.binding.Input()},
	})
}

func (s *Server) handleUpdate(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body or missing value field"})
		return
	}
	if req.Input == "" {
		req.Input = s.binding.Input()
	}

	res, err := s.binding.Dispatch(req.Input, req.Value)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrInvalidAxis) || errors.Is(err, dashboard.ErrUnknownInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	log.Printf("update: %s=%s points=%d rows=%d", req.Input, res.Axis, len(res.Chart.Points), len(res.Records))

	c.JSON(http.StatusOK, updateResponse{
		Figure: res.Chart,
		SVG:    s.renderChart(res.Chart),
		Data:   displayRecords(res.Records),
	})
}

func (s *Server) handleAsset(c *gin.Context) {
	name := path.Base(c.Param("file"))
	data, err := webFS.ReadFile("web/" + name)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	var contentType string
	switch path.Ext(name) {
	case ".js":
		contentType = "text/javascript; charset=utf-8"
	case ".css":
		contentType = "text/css; charset=utf-8"
	default:
		c.Status(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, contentType, data)
}

// renderChart never fails; render errors are logged and replaced by an
// empty chart container.
func (s *Server) renderChart(spec model.ChartSpec) string {
	var opts []chart.Option
	if s.chartW > 0 || s.chartH > 0 {
		opts = append(opts, chart.WithSize(s.chartW, s.chartH))
	}
	if s.chartFmt != "" {
		opts = append(opts, chart.WithTimeFormat(s.chartFmt))
	}
	svg, err := chart.RenderSVGString(spec, opts...)
	if err != nil {
		log.Printf("httpserver: %v", err)
		return ""
	}
	return svg
}

// displayRecords formats preview records for the table widget.
func displayRecords(records []model.Record) []map[string]any {
	out := make([]map[string]any, len(records))
	for i, rec := range records {
		row := make(map[string]any, len(previewColumns))
		for _, col := range previewColumns {
			v := rec[col]
			if ts, ok := v.(time.Time); ok {
				v = ts.Format(displayTimeLayout)
			}
			row[col] = v
		}
		out[i] = row
	}
	return out
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case time.Time:
		return x.Format(displayTimeLayout)
	default:
		b, _ := json.Marshal(x)
		return string(b)
	}
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"portal-calma/internal/analytics"
)

type DashboardHandler struct {
	log       *zap.Logger
	collector *analytics.Collector
}

func NewDashboardHandler(log *zap.Logger, collector *analytics.Collector) *DashboardHandler {
	return &DashboardHandler{log: log, collector: collector}
}

// GetCharts renders the dashboard's charts as echarts option JSON the
// front-end feeds straight into its chart instances.
func (h *DashboardHandler) GetCharts(c *gin.Context) {
	companyID := currentCompanyID(c)

	metrics, err := h.collector.Collect(c.Request.Context(), companyID)
	if err != nil {
		h.log.Error("Failed to collect metrics for charts",
			zap.Error(err),
			zap.String("companyID", companyID),
		)
		metrics = analytics.EmptyMetrics()
	}

	evolutionChart := generateEvolutionChart(metrics.ResponseEvolution)
	departmentChart := generateDepartmentChart(metrics.ResponsesByDepartment)

	evolutionJSON, _ := json.Marshal(evolutionChart.JSON())
	departmentJSON, _ := json.Marshal(departmentChart.JSON())

	c.JSON(http.StatusOK, gin.H{
		"evolution":   json.RawMessage(evolutionJSON),
		"departments": json.RawMessage(departmentJSON),
	})
}

func generateEvolutionChart(data []analytics.ResponseEvolutionData) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Respostas por dia",
			Subtitle: "Últimos 30 dias",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	dates := make([]string, 0, len(data))
	responses := make([]opts.LineData, 0, len(data))
	completion := make([]opts.LineData, 0, len(data))
	for _, point := range data {
		dates = append(dates, point.Date)
		responses = append(responses, opts.LineData{Value: point.Responses})
		completion = append(completion, opts.LineData{Value: point.CompletionRate})
	}

	line.SetXAxis(dates).
		AddSeries("Respostas", responses).
		AddSeries("Taxa de conclusão (%)", completion).
		SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
	return line
}

func generateDepartmentChart(data []analytics.DepartmentResponseData) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Respostas por departamento",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	departments := make([]string, 0, len(data))
	sent := make([]opts.BarData, 0, len(data))
	completed := make([]opts.BarData, 0, len(data))
	for _, row := range data {
		departments = append(departments, row.Department)
		sent = append(sent, opts.BarData{Value: row.TotalSent})
		completed = append(completed, opts.BarData{Value: row.TotalCompleted})
	}

	bar.SetXAxis(departments).
		AddSeries("Enviadas", sent).
		AddSeries("Concluídas", completed)
	return bar
}

package dto

import "github.com/yukikurage/task-tracker/internal/services"

const noDataMessage = "No data available."

// PointDTO is one labelled value of a chart
type PointDTO struct {
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

// ChartDTO describes a chart for the client to draw. When NoData is true,
// Points is omitted and Message explains why.
type ChartDTO struct {
	Kind    services.ChartKind `json:"kind"`
	Title   string             `json:"title"`
	XLabel  string             `json:"x_label"`
	YLabel  string             `json:"y_label"`
	NoData  bool               `json:"no_data"`
	Message string             `json:"message,omitempty"`
	Points  []PointDTO         `json:"points,omitempty"`
}

// AdminDashboardDTO represents the admin dashboard
type AdminDashboardDTO struct {
	TotalEmployees int64    `json:"total_employees"`
	Chart          ChartDTO `json:"chart"`
}

// ToChartDTO converts a chart
func ToChartDTO(chart services.Chart) ChartDTO {
	dto := ChartDTO{
		Kind:   chart.Kind,
		Title:  chart.Title,
		XLabel: chart.XLabel,
		YLabel: chart.YLabel,
		NoData: chart.NoData,
	}
	if chart.NoData {
		dto.Message = noDataMessage
		return dto
	}

	dto.Points = make([]PointDTO, len(chart.Points))
	for i, p := range chart.Points {
		dto.Points[i] = PointDTO{Label: p.Label, Hours: p.Hours}
	}
	return dto
}

// ToAdminDashboardDTO converts the admin dashboard
func ToAdminDashboardDTO(dash services.AdminDashboard) AdminDashboardDTO {
	return AdminDashboardDTO{
		TotalEmployees: dash.TotalEmployees,
		Chart:          ToChartDTO(dash.Chart),
	}
}

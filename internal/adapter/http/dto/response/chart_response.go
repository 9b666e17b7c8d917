package response

import "salesdesk/internal/usecase"

// ChartBucketResponse is one status slice of the revenue chart.
type ChartBucketResponse struct {
	Status  string  `json:"status"`
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
}

func FromStatusMetrics(metrics []usecase.StatusMetrics) []ChartBucketResponse {
	out := make([]ChartBucketResponse, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, ChartBucketResponse{
			Status:  string(m.Status),
			Count:   m.Count,
			Total:   m.Total,
			Average: m.Average,
		})
	}
	return out
}

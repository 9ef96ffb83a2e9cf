package model

// HealthResponse reports liveness and the state of each analytics service.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// DocsResponse lists the public endpoints.
type DocsResponse struct {
	Title     string            `json:"title"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
	Note      string            `json:"note"`
}

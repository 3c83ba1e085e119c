package responses

type Health struct {
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
}

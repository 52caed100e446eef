package dto

// ProbeResponse is returned by the public /test endpoints of each module.
type ProbeResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

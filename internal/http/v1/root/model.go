package root

// Data is the payload for GET /.
type Data struct {
	Message bool `json:"message" doc:"Whether the probe value is empty" example:"false"`
}

// GetOutput is the response wrapper for GET /.
type GetOutput struct {
	Body Data
}

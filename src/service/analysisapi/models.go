package analysisapi

// AnalyzeRequest is the body of POST /analyze
type AnalyzeRequest struct {
	SourceCode string `json:"sourceCode"`
}

// HealthResponse is the body returned by the service root
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// errorBody is the shape of a non-2xx response. Detail is usually a string
// but validation failures report a list of objects.
type errorBody struct {
	Detail any `json:"detail"`
}

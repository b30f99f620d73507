package runpod

// Wire types for the RunPod /runsync endpoint.
//
// The worker behind the endpoint is expected to speak the common
// OpenAI-style embeddings shape inside the RunPod job envelope:
//
//	request:  {"input": {"model": "...", "input": ["text", ...]}}
//	response: {"id": "...", "status": "COMPLETED",
//	           "output": {"data": [{"embedding": [...], "index": 0}, ...]}}

type runsyncRequest struct {
	Input runsyncInput `json:"input"`
}

type runsyncInput struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type runsyncResponse struct {
	ID     string        `json:"id"`
	Status string        `json:"status"`
	Error  string        `json:"error"`
	Output runsyncOutput `json:"output"`
}

type runsyncOutput struct {
	Data []embeddingData `json:"data"`
}

type embeddingData struct {
	Embedding []float32 `json:"embedding"`
	// Index is the position of the source text in the request batch.
	// Workers that omit it are assumed to answer in request order.
	Index *int `json:"index"`
}

// jobCompleted is the terminal success status of a runsync job.
const jobCompleted = "COMPLETED"

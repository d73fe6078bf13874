package recommend

// Place is a search hit returned by the external place-search function.
// Field names follow the upstream payload.
type Place struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	FirstImage  string   `json:"first_image"`
}

// Recommendation is the result of a full recommendation pass: whether the
// query was accepted, the generated message, and the matched places.
type Recommendation struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Places  []Place `json:"places"`
}

// Chat completion wire types (internal).

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatFunction struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Parameters  any    `json:"parameters"`
}

type chatFunctionCall struct {
	Name string `json:"name"`
}

type chatRequest struct {
	Model        string            `json:"model"`
	Messages     []chatMessage     `json:"messages"`
	Functions    []chatFunction    `json:"functions,omitempty"`
	FunctionCall *chatFunctionCall `json:"function_call,omitempty"`
	MaxTokens    int               `json:"max_tokens,omitempty"`
	Temperature  float64           `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content      string `json:"content"`
			FunctionCall *struct {
				Name      string `json:"name"`
				Arguments string `json:"arguments"`
			} `json:"function_call"`
		} `json:"message"`
	} `json:"choices"`
}

type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Results []Place `json:"results"`
}

package rest_clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type EmbeddingClient struct {
	BaseURL string
	Client  *http.Client
}

type embedRequest struct {
	Text string `json:"text"`
}

type embedResponse struct {
	Embedding []float64 `json:"embedding"`
}

func NewEmbeddingClient(baseURL string) *EmbeddingClient {
	return &EmbeddingClient{
		BaseURL: baseURL,
		Client:  &http.Client{},
	}
}

// EmbedText asks the embedding service for a vector over the given text.
func (ec *EmbeddingClient) EmbedText(text string) ([]float64, error) {
	body, err := json.Marshal(embedRequest{Text: text})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/embed", ec.BaseURL)
	resp, err := ec.Client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding-service returned status %d", resp.StatusCode)
	}

	var result embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result.Embedding, nil
}

package langid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// labelPrefix is the fastText label convention ("__label__en").
const labelPrefix = "__label__"

// Remote queries a fastText sidecar serving the lid.176 model over HTTP.
// It exists for deployments that pin the original classifier; the default
// backend is the embedded Lingua detector.
type Remote struct {
	url    string
	client *http.Client
}

// NewRemote creates a client for the given prediction endpoint.
func NewRemote(url string) *Remote {
	return &Remote{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type remoteRequest struct {
	Text string `json:"text"`
}

type remoteResponse struct {
	Predictions []struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
	} `json:"predictions"`
}

// Predict posts the text and normalizes the returned fastText-style
// labels by stripping the "__label__" prefix.
func (r *Remote) Predict(text string) ([]Prediction, error) {
	body, err := json.Marshal(remoteRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("langid: encode request: %w", err)
	}

	resp, err := r.client.Post(r.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("langid: query %s: %w", r.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("langid: %s returned %s", r.url, resp.Status)
	}

	var decoded remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("langid: decode response: %w", err)
	}
	if len(decoded.Predictions) == 0 {
		return nil, fmt.Errorf("langid: %s returned no predictions", r.url)
	}

	preds := make([]Prediction, 0, len(decoded.Predictions))
	for _, p := range decoded.Predictions {
		preds = append(preds, Prediction{
			Lang:       strings.TrimPrefix(p.Label, labelPrefix),
			Confidence: p.Confidence,
		})
	}
	return preds, nil
}

// NewRemoteService returns a lazily initialized service around a Remote
// identifier.
func NewRemoteService(url string) *Service {
	return NewService(func() (Identifier, error) {
		if url == "" {
			return nil, fmt.Errorf("langid: remote url not configured")
		}
		return NewRemote(url), nil
	})
}

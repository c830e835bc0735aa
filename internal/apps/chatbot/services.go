package chatbot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrUpstream = errors.New("assistant service unavailable")

type upstreamRequest struct {
	Question string `json:"question"`
}

type upstreamResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

// Service forwards questions to the assistant microservice. It keeps no
// state of its own.
type Service struct {
	url    string
	client *http.Client
}

func NewService(url string, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *Service) Ask(question string) (*upstreamResponse, error) {
	payload, err := json.Marshal(upstreamRequest{Question: question})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var out upstreamResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: malformed response", ErrUpstream)
	}
	if out.Sources == nil {
		out.Sources = []string{}
	}
	return &out, nil
}

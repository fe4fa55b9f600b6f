package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Envelope — единый конверт ответов сервера.
type Envelope struct {
	Status  string          `json:"status"`
	Results int             `json:"results"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DoJSON sends a JSON request. If token is non-empty, it is passed as a bearer header.
func DoJSON(method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	respBody, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, respBody, nil
}

// PostJSON sends a JSON POST request.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return DoJSON(http.MethodPost, url, payload, token)
}

// GetJSON sends a GET request.
func GetJSON(url, token string) (*http.Response, []byte, error) {
	return DoJSON(http.MethodGet, url, nil, token)
}

// DecodeEnvelope разбирает конверт {status, results?, message?, data}.
func DecodeEnvelope(body []byte) (*Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(body, &e); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return &e, nil
}

// FailMessage вытаскивает message из конверта ошибки; при неудаче — сырой ответ.
func FailMessage(body []byte) string {
	e, err := DecodeEnvelope(body)
	if err != nil || e.Message == "" {
		return string(body)
	}
	return e.Message
}

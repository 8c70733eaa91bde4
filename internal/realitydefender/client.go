// Package realitydefender is a thin HTTP client for the Reality
// Defender media-analysis API: request a presigned upload slot, put the
// media bytes, then poll until the verdict is ready.
package realitydefender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	statusAnalyzing = "ANALYZING"
	statusQueued    = "QUEUED"
)

// Result is the final verdict for one uploaded file.
type Result struct {
	RequestID string  `json:"requestId"`
	Status    string  `json:"status"` // MANIPULATED, AUTHENTIC, ...
	Score     float64 `json:"finalScore"`
}

// Manipulated reports whether the vendor flagged the media.
func (r *Result) Manipulated() bool {
	return r.Status == "MANIPULATED" || r.Status == "FAKE"
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	pollInterval time.Duration
	pollTimeout  time.Duration
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		pollInterval: 2 * time.Second,
		pollTimeout:  90 * time.Second,
	}
}

type presignedResponse struct {
	RequestID string `json:"requestId"`
	Response  struct {
		SignedURL string `json:"signedUrl"`
	} `json:"response"`
}

// Analyze uploads the media and blocks until the vendor returns a
// terminal verdict or the poll window expires.
func (c *Client) Analyze(ctx context.Context, fileName string, media []byte) (*Result, error) {
	slot, err := c.requestUploadSlot(ctx, fileName)
	if err != nil {
		return nil, err
	}

	if err := c.uploadMedia(ctx, slot.Response.SignedURL, media); err != nil {
		return nil, err
	}

	deadline := time.Now().Add(c.pollTimeout)
	for {
		result, err := c.fetchResult(ctx, slot.RequestID)
		if err != nil {
			return nil, err
		}
		if result.Status != statusAnalyzing && result.Status != statusQueued {
			return result, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("analysis of %s timed out", fileName)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
}

func (c *Client) requestUploadSlot(ctx context.Context, fileName string) (*presignedResponse, error) {
	body, err := json.Marshal(map[string]string{"fileName": fileName})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/files/aws-presigned", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request upload slot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upload slot request returned status %d", resp.StatusCode)
	}

	var slot presignedResponse
	if err := json.NewDecoder(resp.Body).Decode(&slot); err != nil {
		return nil, fmt.Errorf("failed to decode upload slot response: %w", err)
	}
	return &slot, nil
}

func (c *Client) uploadMedia(ctx context.Context, signedURL string, media []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, signedURL, bytes.NewReader(media))
	if err != nil {
		return err
	}
	req.ContentLength = int64(len(media))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("media upload failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("media upload returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) fetchResult(ctx context.Context, requestID string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/media/users/"+requestID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analysis result: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analysis result returned status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis result: %w", err)
	}
	result.RequestID = requestID
	return &result, nil
}

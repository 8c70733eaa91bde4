package realitydefender

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Analyze(t *testing.T) {
	var uploaded atomic.Bool
	var polls atomic.Int32

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/api/files/aws-presigned", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "clip.mp4", body["fileName"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"requestId": "req-123",
			"response":  map[string]string{"signedUrl": srv.URL + "/upload/req-123"},
		})
	})
	mux.HandleFunc("/upload/req-123", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		uploaded.Store(true)
	})
	mux.HandleFunc("/api/media/users/req-123", func(w http.ResponseWriter, r *http.Request) {
		// first poll still analyzing, second poll terminal
		if polls.Add(1) == 1 {
			json.NewEncoder(w).Encode(map[string]interface{}{"status": "ANALYZING"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":     "MANIPULATED",
			"finalScore": 0.87,
		})
	})

	c := NewClient("test-key", srv.URL)
	c.pollInterval = 10 * time.Millisecond
	result, err := c.Analyze(context.Background(), "clip.mp4", []byte("media-bytes"))
	require.NoError(t, err)

	assert.True(t, uploaded.Load())
	assert.True(t, result.Manipulated())
	assert.InDelta(t, 0.87, result.Score, 0.001)
	assert.Equal(t, "req-123", result.RequestID)
	assert.GreaterOrEqual(t, polls.Load(), int32(2))
}

func TestClient_Analyze_UploadSlotRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("bad-key", srv.URL)
	_, err := c.Analyze(context.Background(), "clip.mp4", []byte("x"))
	require.Error(t, err)
}

func TestResult_Manipulated(t *testing.T) {
	assert.True(t, (&Result{Status: "MANIPULATED"}).Manipulated())
	assert.True(t, (&Result{Status: "FAKE"}).Manipulated())
	assert.False(t, (&Result{Status: "AUTHENTIC"}).Manipulated())
}

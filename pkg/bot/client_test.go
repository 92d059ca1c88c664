package bot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Status(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bot/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"phase":"PROCESSING_SUBMISSIONS","isRunning":true,"connectedClients":2,"serverUptime":3600,"timestamp":"2025-06-01T12:00:00Z"}`))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	status, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PhaseProcessing, status.Phase)
	assert.True(t, status.IsRunning)
	assert.Equal(t, 2, status.ConnectedClients)
}

func TestClient_Progress(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bot/progress", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"businesses":[
			{"businessName":"Acme Co","site":"directory-a","currentStep":"UPLOADING_IMAGES","stepMessage":"uploading 3 images","progress":60,"imagesCount":3,"gmailStatus":"VERIFIED"},
			{"businessName":"Beta LLC","site":"directory-a","currentStep":"FAILED","stepMessage":"captcha","progress":20,"gmailStatus":"CONNECTED","errors":["captcha challenge"]}
		]}`))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	progress, err := c.Progress(context.Background())
	require.NoError(t, err)
	require.Len(t, progress, 2)
	assert.Equal(t, "Acme Co", progress[0].BusinessName)
	assert.Equal(t, 60, progress[0].Progress)
	assert.Equal(t, []string{"captcha challenge"}, progress[1].Errors)
}

func TestClient_Summary(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bot/summary", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total":10,"completed":6,"failed":1,"inProgress":2,"pending":1}`))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	summary, err := c.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, summary.Total)
	assert.Equal(t, 6, summary.Completed)
	assert.Equal(t, 1, summary.Pending)
}

func TestClient_Logs(t *testing.T) {
	t.Parallel()

	t.Run("full buffer", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/bot/logs", r.URL.Path)
			assert.Empty(t, r.URL.Query().Get("since"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"logs":[{"id":"1","timestamp":"2025-06-01T12:00:00Z","message":"started","type":"phase"}]}`))
		}))
		defer server.Close()

		c := NewClient(WithBaseURL(server.URL))
		logs, err := c.Logs(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, "started", logs[0].Message)
	})

	t.Run("since id", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "42", r.URL.Query().Get("since"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"logs":[]}`))
		}))
		defer server.Close()

		c := NewClient(WithBaseURL(server.URL))
		logs, err := c.Logs(context.Background(), "42")
		require.NoError(t, err)
		assert.Empty(t, logs)
	})
}

func TestClient_ErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	_, err := c.Status(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_Unreachable(t *testing.T) {
	t.Parallel()

	c := NewClient(WithBaseURL("http://127.0.0.1:1"))
	_, err := c.Status(context.Background())
	assert.Error(t, err)
}

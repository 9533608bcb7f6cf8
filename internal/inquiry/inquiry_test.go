package inquiry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientInquire(t *testing.T) {
	const body = `{"responseText": "Devoxx is a developer conference", "resources": []}`

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++

		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "what is Devoxx U.S.?", r.URL.Query().Get("text"))
		assert.Equal(t, "text=what+is+Devoxx+U.S.%3F", r.URL.RawQuery)

		_, err := w.Write([]byte(body))
		assert.NoError(t, err)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	got, err := c.Inquire(context.Background(), "what is Devoxx U.S.?")
	require.NoError(t, err)
	assert.Equal(t, body, got)
	assert.Equal(t, 1, calls)
}

func TestClientInquireErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	_, err := c.Inquire(context.Background(), "what is devoxx")
	assert.Error(t, err)
}

func TestClientInquireConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, time.Second)

	_, err := c.Inquire(context.Background(), "what is devoxx")
	assert.Error(t, err)
}

func TestClientInquireTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 20*time.Millisecond)

	_, err := c.Inquire(context.Background(), "what is devoxx")
	assert.Error(t, err)
}

func TestResponseSpeech(t *testing.T) {
	testCases := []struct {
		name     string
		response Response
		expected string
	}{
		{
			name: "text_only",
			response: Response{
				ResponseText: "A",
			},
			expected: "A",
		},
		{
			name: "first_two_resources",
			response: Response{
				ResponseText: "A",
				Resources:    []Resource{{Body: "B"}, {Body: "C"}, {Body: "D"}},
			},
			expected: "A\nB\nC",
		},
		{
			name: "single_resource",
			response: Response{
				ResponseText: "A",
				Resources:    []Resource{{Body: "B"}},
			},
			expected: "A\nB",
		},
		{
			name: "empty_text_with_resources",
			response: Response{
				Resources: []Resource{{Body: "B"}},
			},
			expected: "\nB",
		},
		{
			name:     "empty_payload",
			response: Response{},
			expected: "Unable to respond to your inquiry\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.response.Speech())
		})
	}
}

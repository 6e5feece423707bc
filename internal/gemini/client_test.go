package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerate_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hi there"}]}}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "gemini-2.0-flash").WithBaseURL(server.URL)

	text, err := client.Generate(context.Background(), []Content{
		{Role: RoleUser, Parts: []Part{{Text: "hello"}}},
	})
	require.NoError(t, err)
	require.Equal(t, "hi there", text)

	require.Equal(t, "/gemini-2.0-flash:generateContent", gotPath)
	require.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Equal(t, RoleUser, gotBody.Contents[0].Role)
	require.Equal(t, "hello", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerate_MultiTurnEncoding(t *testing.T) {
	var gotBody generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer server.Close()

	client := NewClient("k", "gemini-2.0-flash").WithBaseURL(server.URL)

	_, err := client.Generate(context.Background(), []Content{
		{Role: RoleUser, Parts: []Part{{Text: "first"}}},
		{Role: RoleModel, Parts: []Part{{Text: "reply"}}},
		{Role: RoleUser, Parts: []Part{{Text: "second"}}},
	})
	require.NoError(t, err)

	require.Len(t, gotBody.Contents, 3)
	require.Equal(t, RoleModel, gotBody.Contents[1].Role)
	require.Equal(t, "second", gotBody.Contents[2].Parts[0].Text)
}

func TestGenerate_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"code":401,"message":"API key not valid","status":"UNAUTHENTICATED"}}`,
			wantErr: ErrUnauthorized,
		},
		{
			name:    "forbidden maps to unauthorized",
			status:  http.StatusForbidden,
			body:    `{"error":{"code":403,"message":"forbidden","status":"PERMISSION_DENIED"}}`,
			wantErr: ErrUnauthorized,
		},
		{
			name:    "quota exceeded",
			status:  http.StatusTooManyRequests,
			body:    `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`,
			wantErr: ErrQuotaExceeded,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewClient("k", "m").WithBaseURL(server.URL)
			_, err := client.Generate(context.Background(), []Content{{Parts: []Part{{Text: "x"}}}})
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGenerate_ServerErrorIsNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":500,"message":"internal","status":"INTERNAL"}}`))
	}))
	defer server.Close()

	client := NewClient("k", "m").WithBaseURL(server.URL)
	_, err := client.Generate(context.Background(), []Content{{Parts: []Part{{Text: "x"}}}})

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Contains(t, netErr.Error(), "internal")
}

func TestGenerate_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not JSON", body: "<html>gateway error</html>"},
		{name: "no candidates", body: `{"candidates":[]}`},
		{name: "no parts", body: `{"candidates":[{"content":{"parts":[]}}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewClient("k", "m").WithBaseURL(server.URL)
			_, err := client.Generate(context.Background(), []Content{{Parts: []Part{{Text: "x"}}}})
			require.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestGenerate_ConnectionRefused(t *testing.T) {
	// Grab a port that nothing is listening on.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient("k", "m").WithBaseURL(url)
	_, err := client.Generate(context.Background(), []Content{{Parts: []Part{{Text: "x"}}}})

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestGenerate_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"late"}]}}]}`))
	}))
	defer server.Close()

	client := NewClient("k", "m").WithBaseURL(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Generate(ctx, []Content{{Parts: []Part{{Text: "x"}}}})

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.True(t, errors.Is(err, context.DeadlineExceeded), "timeout should surface the deadline")
}

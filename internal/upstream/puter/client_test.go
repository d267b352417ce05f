package puter_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/vibeproxy/internal/domain"
	"github.com/davidbz/vibeproxy/internal/upstream/puter"
)

func newTestClient(t *testing.T, url string) *puter.Client {
	t.Helper()

	client, err := puter.NewClient(puter.Config{
		URL:       url,
		Interface: "puter-chat-completion",
		Driver:    "anthropic",
		Method:    "complete",
	})
	require.NoError(t, err)

	return client
}

func userArgs(prompt string) *domain.CompletionArgs {
	return &domain.CompletionArgs{
		Messages: []domain.Message{{Role: "user", Content: prompt}},
		Model:    "claude-sonnet-4-5",
	}
}

func collect(t *testing.T, lines <-chan domain.StreamLine) []domain.StreamLine {
	t.Helper()

	var out []domain.StreamLine
	timeout := time.After(5 * time.Second)
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return out
			}
			out = append(out, line)
		case <-timeout:
			t.Fatal("stream did not close")
			return nil
		}
	}
}

func TestNewClient_MissingURL(t *testing.T) {
	client, err := puter.NewClient(puter.Config{})

	require.Error(t, err)
	require.Nil(t, client)
	require.Contains(t, err.Error(), "upstream URL is required")
}

func TestComplete_SendsEnvelope(t *testing.T) {
	bodies := make(chan map[string]any, 1)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies <- body

		fmt.Fprint(w, `{"message":{"content":[{"text":"hello"}]},"usage":{"tokens":5}}`)
	}))
	defer upstream.Close()

	completion, err := newTestClient(t, upstream.URL).Complete(context.Background(), userArgs("hi"))

	require.NoError(t, err)
	require.Equal(t, "hello", completion.Text)
	require.Equal(t, map[string]any{"tokens": float64(5)}, completion.Usage)

	got := <-bodies
	require.Equal(t, "puter-chat-completion", got["interface"])
	require.Equal(t, "anthropic", got["driver"])
	require.Equal(t, "complete", got["method"])

	args, ok := got["args"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "claude-sonnet-4-5", args["model"])
	require.NotContains(t, args, "stream")
	require.Equal(t, []any{map[string]any{"role": "user", "content": "hi"}}, args["messages"])
}

func TestComplete_MissingContent(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"message":{"content":[]}}`)
	}))
	defer upstream.Close()

	completion, err := newTestClient(t, upstream.URL).Complete(context.Background(), userArgs("hi"))

	require.NoError(t, err)
	require.Empty(t, completion.Text)
	require.Nil(t, completion.Usage)
}

func TestComplete_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, "rate limited")
	}))
	defer upstream.Close()

	completion, err := newTestClient(t, upstream.URL).Complete(context.Background(), userArgs("hi"))

	require.Nil(t, completion)
	require.Error(t, err)
	require.Equal(t, domain.KindUpstream, domain.KindOf(err))
	require.Equal(t, http.StatusTooManyRequests, domain.StatusCode(err))

	var relayErr *domain.Error
	require.ErrorAs(t, err, &relayErr)
	require.Equal(t, "rate limited", relayErr.Details)
}

func TestComplete_MalformedPayload(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"message":{"content":"not a list"}}`)
	}))
	defer upstream.Close()

	completion, err := newTestClient(t, upstream.URL).Complete(context.Background(), userArgs("hi"))

	require.Nil(t, completion)
	require.Equal(t, domain.KindInternal, domain.KindOf(err))
	require.Equal(t, http.StatusInternalServerError, domain.StatusCode(err))
}

func TestComplete_Unreachable(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	url := upstream.URL
	upstream.Close()

	completion, err := newTestClient(t, url).Complete(context.Background(), userArgs("hi"))

	require.Nil(t, completion)
	require.Equal(t, domain.KindInternal, domain.KindOf(err))
}

func TestComplete_NilArgs(t *testing.T) {
	completion, err := newTestClient(t, "http://127.0.0.1:1").Complete(context.Background(), nil)

	require.Nil(t, completion)
	require.Error(t, err)
	require.Contains(t, err.Error(), "args cannot be nil")
}

func TestStream_RelaysNonEmptyLinesInOrder(t *testing.T) {
	bodies := make(chan map[string]any, 1)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies <- body

		flusher, ok := w.(http.Flusher)
		require.True(t, ok)

		for _, line := range []string{`{"text":"a"}`, "", `{"text":"b"}`, `{"text":"c"}`} {
			fmt.Fprintf(w, "%s\n", line)
			flusher.Flush()
		}
	}))
	defer upstream.Close()

	lines, err := newTestClient(t, upstream.URL).Stream(context.Background(), userArgs("hi"))
	require.NoError(t, err)

	out := collect(t, lines)

	require.Len(t, out, 3)
	require.Equal(t, `{"text":"a"}`, string(out[0].Data))
	require.Equal(t, `{"text":"b"}`, string(out[1].Data))
	require.Equal(t, `{"text":"c"}`, string(out[2].Data))
	for _, line := range out {
		require.NoError(t, line.Err)
	}

	got := <-bodies
	args, ok := got["args"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, true, args["stream"])
}

func TestStream_LongLinesAndTrailingFragment(t *testing.T) {
	long := `{"text":"` + strings.Repeat("x", 2<<20) + `"}`
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"text":"a"}`+"\r\n")
		fmt.Fprint(w, long+"\n")
		fmt.Fprint(w, `{"text":"c"}`)
	}))
	defer upstream.Close()

	lines, err := newTestClient(t, upstream.URL).Stream(context.Background(), userArgs("hi"))
	require.NoError(t, err)

	out := collect(t, lines)

	require.Len(t, out, 3)
	require.Equal(t, `{"text":"a"}`, string(out[0].Data))
	require.Equal(t, long, string(out[1].Data))
	require.Equal(t, `{"text":"c"}`, string(out[2].Data))
	for _, line := range out {
		require.NoError(t, line.Err)
	}
}

func TestStream_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, "down")
	}))
	defer upstream.Close()

	lines, err := newTestClient(t, upstream.URL).Stream(context.Background(), userArgs("hi"))

	require.Nil(t, lines)
	require.Equal(t, domain.KindUpstream, domain.KindOf(err))
	require.Equal(t, http.StatusServiceUnavailable, domain.StatusCode(err))
}

func TestStream_CancelReleasesUpstream(t *testing.T) {
	released := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)

		fmt.Fprint(w, "{\"text\":\"first\"}\n")
		flusher.Flush()

		<-r.Context().Done()
		close(released)
	}))
	defer upstream.Close()

	ctx, cancel := context.WithCancel(context.Background())
	lines, err := newTestClient(t, upstream.URL).Stream(ctx, userArgs("hi"))
	require.NoError(t, err)

	first := <-lines
	require.Equal(t, `{"text":"first"}`, string(first.Data))

	cancel()

	collect(t, lines)

	select {
	case <-released:
	case <-time.After(5 * time.Second):
		t.Fatal("upstream connection was not released")
	}
}

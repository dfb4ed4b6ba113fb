package wiki

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.Client())
	c.base = srv.URL
	return c
}

func TestSummaryTrimsToTwoSentences(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rest_v1/page/summary/Alan_turing", r.URL.Path)
		w.Write([]byte(`{"type":"standard","extract":"First sentence. Second sentence! Third sentence."}`))
	})

	got, err := c.Summary(context.Background(), "alan turing")
	require.NoError(t, err)
	assert.Equal(t, "First sentence. Second sentence!", got)
}

func TestSummaryUppercasesLeadingLetter(t *testing.T) {
	var path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{"type":"standard","extract":"A plant process."}`))
	})

	_, err := c.Summary(context.Background(), "photosynthesis")
	require.NoError(t, err)
	assert.Equal(t, "/api/rest_v1/page/summary/Photosynthesis", path)
}

func TestSummaryShortExtractKeptWhole(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"standard","extract":"Just one sentence."}`))
	})

	got, err := c.Summary(context.Background(), "topic")
	require.NoError(t, err)
	assert.Equal(t, "Just one sentence.", got)
}

func TestSummaryDisambiguationIsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"disambiguation","extract":"Mercury may refer to:"}`))
	})

	_, err := c.Summary(context.Background(), "mercury")
	assert.Error(t, err)
}

func TestSummaryNotFoundIsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := c.Summary(context.Background(), "no such page")
	assert.Error(t, err)
}

func TestSummaryEmptyTopicIsError(t *testing.T) {
	c := NewClient(http.DefaultClient)

	_, err := c.Summary(context.Background(), "   ")
	assert.Error(t, err)
}

func TestFirstSentencesSkipsInlineDots(t *testing.T) {
	got := firstSentences("Version 1.5 shipped. Then came 2.0. The end.", 2)
	assert.Equal(t, "Version 1.5 shipped. Then came 2.0.", got)
}

package genai_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chenghui/supervision-go/pkg/genai"
	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *genai.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := genai.NewClient("test-key", "test-model", 2*time.Second)
	c.BaseURL = srv.URL
	return c
}

func TestGenerateDraft(t *testing.T) {
	t.Run("returns candidate text", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"今日施工情况正常。"}]}}]}`))
		})

		got := c.GenerateDraft(context.Background(), "监理日志", "浇筑混凝土")
		assert.Equal(t, "今日施工情况正常。", got)
	})

	t.Run("upstream error becomes fixed failure string", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		got := c.GenerateDraft(context.Background(), "监理日志", "x")
		assert.Equal(t, genai.DraftFailure, got)
	})

	t.Run("empty candidates become placeholder", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		})

		got := c.GenerateDraft(context.Background(), "监理日志", "x")
		assert.Equal(t, genai.DraftEmpty, got)
	})
}

func TestSummarizeRisks(t *testing.T) {
	t.Run("returns analysis text", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"建议立即停工整改。"}]}}]}`))
		})

		got := c.SummarizeRisks(context.Background(), []map[string]string{{"id": "R1"}})
		assert.Equal(t, "建议立即停工整改。", got)
	})

	t.Run("failure string on transport error", func(t *testing.T) {
		c := genai.NewClient("k", "m", 100*time.Millisecond)
		c.BaseURL = "http://127.0.0.1:0"

		got := c.SummarizeRisks(context.Background(), nil)
		assert.Equal(t, genai.SummaryFailure, got)
	})

	t.Run("empty result becomes placeholder", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})

		got := c.SummarizeRisks(context.Background(), nil)
		assert.Equal(t, genai.SummaryEmpty, got)
	})
}

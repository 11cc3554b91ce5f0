package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fineduguide/fineduguide/core/errors"
)

type testConfig struct {
	apiKey  string
	baseURL string
	model   string
	dim     int
}

func (c *testConfig) GetAPIKey() string         { return c.apiKey }
func (c *testConfig) GetBaseURL() string        { return c.baseURL }
func (c *testConfig) GetEmbeddingModel() string { return c.model }
func (c *testConfig) GetDimensions() int        { return c.dim }

func TestNewClientRequiresConfig(t *testing.T) {
	ctx := context.Background()

	_, err := NewClient(ctx, &testConfig{baseURL: "http://localhost", model: "m"})
	assert.True(t, errors.IsCode(err, errors.ErrInvalidParameter))

	_, err = NewClient(ctx, &testConfig{apiKey: "k", model: "m"})
	assert.True(t, errors.IsCode(err, errors.ErrInvalidParameter))

	_, err = NewClient(ctx, &testConfig{apiKey: "k", baseURL: "http://localhost"})
	assert.True(t, errors.IsCode(err, errors.ErrInvalidParameter))
}

func TestEmbedStrings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req embeddingRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)

		resp := map[string]any{"data": []map[string]any{}}
		data := resp["data"].([]map[string]any)
		// 响应乱序返回，客户端需要按 index 归位
		for i := len(req.Input) - 1; i >= 0; i-- {
			data = append(data, map[string]any{
				"embedding": []float64{float64(i), float64(i) + 0.5},
				"index":     i,
				"object":    "embedding",
			})
		}
		resp["data"] = data
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client, err := NewClient(context.Background(), &testConfig{
		apiKey: "test-key", baseURL: server.URL, model: "test-model", dim: 2,
	})
	assert.NoError(t, err)

	vectors, err := client.EmbedStrings(context.Background(), []string{"a", "b", "c"})
	assert.NoError(t, err)
	assert.Len(t, vectors, 3)
	for i, vec := range vectors {
		assert.Equal(t, []float32{float32(i), float32(i) + 0.5}, vec)
	}
}

func TestEmbedStringsEmptyInput(t *testing.T) {
	client, err := NewClient(context.Background(), &testConfig{
		apiKey: "k", baseURL: "http://localhost:1", model: "m", dim: 2,
	})
	assert.NoError(t, err)

	vectors, err := client.EmbedStrings(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, vectors)
}

func TestEmbedStringsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "invalid api key", "type": "auth"},
		})
	}))
	defer server.Close()

	client, err := NewClient(context.Background(), &testConfig{
		apiKey: "bad", baseURL: server.URL, model: "m", dim: 2,
	})
	assert.NoError(t, err)

	_, err = client.EmbedStrings(context.Background(), []string{"a"})
	assert.True(t, errors.IsCode(err, errors.ErrEmbeddingFailed))
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestEmbedStringsRejectsNegativeIndex(t *testing.T) {
	// 畸形响应必须返回错误而不是panic
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float64{1}, "index": -1}},
		})
	}))
	defer server.Close()

	client, err := NewClient(context.Background(), &testConfig{
		apiKey: "k", baseURL: server.URL, model: "m", dim: 1,
	})
	assert.NoError(t, err)

	_, err = client.EmbedStrings(context.Background(), []string{"a"})
	assert.True(t, errors.IsCode(err, errors.ErrEmbeddingFailed))
	assert.Contains(t, err.Error(), "invalid embedding index")
}

func TestEmbedStringsLengthMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float64{1}, "index": 0}},
		})
	}))
	defer server.Close()

	client, err := NewClient(context.Background(), &testConfig{
		apiKey: "k", baseURL: server.URL, model: "m", dim: 1,
	})
	assert.NoError(t, err)

	_, err = client.EmbedStrings(context.Background(), []string{"a", "b"})
	assert.True(t, errors.IsCode(err, errors.ErrEmbeddingFailed))
}

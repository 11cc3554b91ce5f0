package indexer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudwego/eino/schema"
	"github.com/milvus-io/milvus/client/v2/milvusclient"

	"github.com/fineduguide/fineduguide/core/errors"
)

type fakeEmbedder struct {
	fail  bool
	calls [][]string
}

func (f *fakeEmbedder) EmbedStrings(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls = append(f.calls, texts)
	if f.fail {
		return nil, errors.New(errors.ErrEmbeddingFailed, "embedding service unavailable")
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(i), float32(len(texts[i]))}
	}
	return vectors, nil
}

type fakeStore struct {
	failUpsert bool
	upserted   []*schema.Document
}

func (f *fakeStore) CreateDatabaseIfNotExists(ctx context.Context) error { return nil }
func (f *fakeStore) EnsureCollection(ctx context.Context, name string) error {
	return nil
}
func (f *fakeStore) CollectionExists(ctx context.Context, name string) (bool, error) {
	return true, nil
}
func (f *fakeStore) DeleteCollection(ctx context.Context, name string) error { return nil }
func (f *fakeStore) Search(ctx context.Context, name string, vector []float32, topK int) ([]*schema.Document, error) {
	return nil, nil
}
func (f *fakeStore) DeleteBySource(ctx context.Context, name string, source string) error {
	return nil
}
func (f *fakeStore) GetClient() *milvusclient.Client { return nil }

func (f *fakeStore) UpsertChunks(ctx context.Context, name string, chunks []*schema.Document, vectors [][]float32) ([]string, error) {
	if f.failUpsert {
		return nil, fmt.Errorf("milvus unavailable")
	}
	f.upserted = append(f.upserted, chunks...)
	ids := make([]string, len(chunks))
	for i, c := range chunks {
		ids[i] = c.ID
	}
	return ids, nil
}

func testChunks(n int) []*schema.Document {
	chunks := make([]*schema.Document, n)
	for i := range chunks {
		chunks[i] = &schema.Document{
			ID:      fmt.Sprintf("doc.txt_%d", i),
			Content: fmt.Sprintf("chunk %d content", i),
		}
	}
	return chunks
}

func TestStoreChunksSuccess(t *testing.T) {
	embedder := &fakeEmbedder{}
	store := &fakeStore{}
	ix := NewIndexer(embedder, store)

	ok, err := ix.StoreChunks(context.Background(), "fineduguide", testChunks(3))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, store.upserted, 3)
	assert.Len(t, embedder.calls, 1)
	assert.Len(t, embedder.calls[0], 3)
}

func TestStoreChunksEmptyInput(t *testing.T) {
	ix := NewIndexer(&fakeEmbedder{}, &fakeStore{})

	ok, err := ix.StoreChunks(context.Background(), "fineduguide", nil)
	assert.False(t, ok)
	assert.True(t, errors.IsCode(err, errors.ErrInvalidParameter))
}

func TestStoreChunksEmbeddingFailurePropagates(t *testing.T) {
	store := &fakeStore{}
	ix := NewIndexer(&fakeEmbedder{fail: true}, store)

	ok, err := ix.StoreChunks(context.Background(), "fineduguide", testChunks(2))
	assert.False(t, ok)
	assert.True(t, errors.IsCode(err, errors.ErrEmbeddingFailed))
	assert.Empty(t, store.upserted)
}

func TestStoreChunksUpsertFailureReturnsFalse(t *testing.T) {
	ix := NewIndexer(&fakeEmbedder{}, &fakeStore{failUpsert: true})

	// 向量库写入失败不作为error上抛，调用方通过ok=false感知
	ok, err := ix.StoreChunks(context.Background(), "fineduguide", testChunks(2))
	assert.NoError(t, err)
	assert.False(t, ok)
}

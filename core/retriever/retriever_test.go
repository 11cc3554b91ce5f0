package retriever

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
	fail bool
}

func (f *fakeEmbedder) EmbedString(ctx context.Context, text string) ([]float32, error) {
	if f.fail {
		return nil, errors.New(errors.ErrEmbeddingFailed, "embedding service unavailable")
	}
	return []float32{0.1, 0.2}, nil
}

type fakeStore struct {
	failSearch bool
	results    []*schema.Document
	gotTopK    int
}

func (f *fakeStore) CreateDatabaseIfNotExists(ctx context.Context) error     { return nil }
func (f *fakeStore) EnsureCollection(ctx context.Context, name string) error { return nil }
func (f *fakeStore) CollectionExists(ctx context.Context, name string) (bool, error) {
	return true, nil
}
func (f *fakeStore) DeleteCollection(ctx context.Context, name string) error { return nil }
func (f *fakeStore) UpsertChunks(ctx context.Context, name string, chunks []*schema.Document, vectors [][]float32) ([]string, error) {
	return nil, nil
}
func (f *fakeStore) DeleteBySource(ctx context.Context, name string, source string) error {
	return nil
}
func (f *fakeStore) GetClient() *milvusclient.Client { return nil }

func (f *fakeStore) Search(ctx context.Context, name string, vector []float32, topK int) ([]*schema.Document, error) {
	f.gotTopK = topK
	if f.failSearch {
		return nil, fmt.Errorf("milvus unavailable")
	}
	return f.results, nil
}

func TestRetrieveValidatesInput(t *testing.T) {
	engine := NewEngine(&fakeEmbedder{}, &fakeStore{})

	_, err := engine.Retrieve(context.Background(), "fineduguide", "", 5)
	assert.True(t, errors.IsCode(err, errors.ErrInvalidParameter))

	_, err = engine.Retrieve(context.Background(), "fineduguide", "compound interest", 0)
	assert.True(t, errors.IsCode(err, errors.ErrInvalidParameter))
}

func TestRetrieveDeduplicatesById(t *testing.T) {
	store := &fakeStore{
		results: []*schema.Document{
			(&schema.Document{ID: "a.txt_0", Content: "first"}).WithScore(0.9),
			(&schema.Document{ID: "a.txt_0", Content: "duplicate"}).WithScore(0.8),
			(&schema.Document{ID: "a.txt_1", Content: "second"}).WithScore(0.7),
		},
	}
	engine := NewEngine(&fakeEmbedder{}, store)

	docs, err := engine.Retrieve(context.Background(), "fineduguide", "compound interest", 5)
	assert.NoError(t, err)
	assert.Len(t, docs, 2)
	assert.Equal(t, "a.txt_0", docs[0].ID)
	assert.Equal(t, "first", docs[0].Content)
	assert.Equal(t, 5, store.gotTopK)
}

func TestRetrieveEmbeddingFailure(t *testing.T) {
	engine := NewEngine(&fakeEmbedder{fail: true}, &fakeStore{})

	_, err := engine.Retrieve(context.Background(), "fineduguide", "compound interest", 5)
	assert.True(t, errors.IsCode(err, errors.ErrEmbeddingFailed))
}

func TestRetrieveSearchFailure(t *testing.T) {
	engine := NewEngine(&fakeEmbedder{}, &fakeStore{failSearch: true})

	_, err := engine.Retrieve(context.Background(), "fineduguide", "compound interest", 5)
	assert.True(t, errors.IsCode(err, errors.ErrVectorSearch))
}

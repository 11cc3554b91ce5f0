package milvus

import (
	"github.com/milvus-io/milvus/client/v2/entity"
)

// CollectionSchema represents the schema for document chunk collections in Milvus.
// Chunks are keyed by "{source}_{chunk_index}" so re-ingesting a file upserts in place.
type CollectionSchema struct {
	// Id is the unique identifier for each chunk (primary key)
	Id string `milvus:"id,varchar,512,primary_key"`

	// Text is the content of the document chunk
	Text string `milvus:"text,varchar,65535"`

	// Vector is the embedding vector of the chunk
	Vector []float32 `milvus:"vector,float_vector"`

	// Source is the file name the chunk was extracted from
	Source string `milvus:"source,varchar,512"`

	// Metadata stores additional information as JSON
	Metadata string `milvus:"metadata,json"`
}

// GetFields returns the Milvus field definitions for the chunk collection
func (CollectionSchema) GetFields(dim string) []*entity.Field {
	return []*entity.Field{
		{
			Name:        "id",
			DataType:    entity.FieldTypeVarChar,
			TypeParams:  map[string]string{"max_length": "512"},
			PrimaryKey:  true,
			AutoID:      false,
			Description: "Chunk unique ID (primary key)",
		},
		{
			Name:        "text",
			DataType:    entity.FieldTypeVarChar,
			TypeParams:  map[string]string{"max_length": "65535"},
			Description: "Document chunk content",
		},
		{
			Name:        "vector",
			DataType:    entity.FieldTypeFloatVector,
			TypeParams:  map[string]string{"dim": dim},
			Description: "Document chunk embedding vector",
		},
		{
			Name:        "source",
			DataType:    entity.FieldTypeVarChar,
			TypeParams:  map[string]string{"max_length": "512"},
			Description: "Source file name",
		},
		{
			Name:        "metadata",
			DataType:    entity.FieldTypeJSON,
			Description: "Additional metadata (JSON)",
		},
	}
}

// GetStandardCollectionFields is a helper function to get the chunk collection fields
func GetStandardCollectionFields(dim string) []*entity.Field {
	return CollectionSchema{}.GetFields(dim)
}

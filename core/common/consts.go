package common

const (
	FieldContent       = "text"
	FieldContentVector = "vector"
	FieldMetadata      = "metadata"
	FieldSource        = "source"

	// 片段元数据键
	MetaSource       = "source"
	MetaChunkIndex   = "chunk_index"
	MetaChunkSize    = "chunk_size"
	MetaChunkOverlap = "chunk_overlap"
	MetaText         = "text"
)

package v1

import (
	"github.com/gogf/gf/v2/frame/g"
)

type DocumentInfo struct {
	ID            string `json:"id"`
	FileName      string `json:"file_name"`
	FileExtension string `json:"file_extension"`
	ChunkCount    int    `json:"chunk_count"`
	Status        int8   `json:"status"`
	CreateTime    string `json:"create_time"`
}

type DocumentsListReq struct {
	g.Meta `path:"/documents" method:"get" tags:"documents" summary:"List ingested documents"`
}

type DocumentsListRes struct {
	g.Meta `mime:"application/json"`
	Data   []DocumentInfo `json:"data"`
	Total  int            `json:"total"`
}

type DocumentsDeleteReq struct {
	g.Meta     `path:"/documents" method:"delete" tags:"documents" summary:"Delete a document, its stored file and its chunks"`
	DocumentId string `p:"document_id" dc:"document_id" v:"required"`
}

type DocumentsDeleteRes struct {
	g.Meta `mime:"application/json"`
}

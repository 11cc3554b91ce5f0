package v1

import (
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
)

type UploadFileReq struct {
	g.Meta              `path:"/upload-file" method:"post" mime:"multipart/form-data" tags:"documents" summary:"Upload a PDF or TXT document into the knowledge base"`
	File                *ghttp.UploadFile `p:"file" type:"file" v:"required" dc:"PDF or TXT file"`
	PDFProcessingMethod string            `p:"pdf_processing_method" dc:"Required for PDF files: 'standard text extraction' or 'ocr based extraction'"`
}

type UploadFileRes struct {
	g.Meta     `mime:"application/json"`
	Message    string `json:"message"`
	DocumentId string `json:"document_id"`
	FileName   string `json:"file_name"`
	ChunkCount int    `json:"chunk_count"`
}

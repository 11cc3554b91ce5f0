package fineduguide

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"

	v1 "github.com/fineduguide/fineduguide/api/fineduguide/v1"
	"github.com/fineduguide/fineduguide/internal/logic/ingest"
)

// UploadFile handles document upload and ingestion.
func (c *ControllerV1) UploadFile(ctx context.Context, req *v1.UploadFileReq) (res *v1.UploadFileRes, err error) {
	g.Log().Infof(ctx, "UploadFile request received - file: %s, pdf_processing_method: %s",
		req.File.Filename, req.PDFProcessingMethod)

	result, err := ingest.ProcessUpload(ctx, req.File, req.PDFProcessingMethod)
	if err != nil {
		return nil, err
	}

	return &v1.UploadFileRes{
		Message:    "File uploaded and processed successfully",
		DocumentId: result.DocumentID,
		FileName:   result.FileName,
		ChunkCount: result.ChunkCount,
	}, nil
}

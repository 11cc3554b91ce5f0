package ingest

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
	"github.com/google/uuid"

	"github.com/fineduguide/fineduguide/core/chunker"
	"github.com/fineduguide/fineduguide/core/common"
	"github.com/fineduguide/fineduguide/core/config"
	"github.com/fineduguide/fineduguide/core/errors"
	"github.com/fineduguide/fineduguide/core/extract"
	"github.com/fineduguide/fineduguide/core/file_store"
	"github.com/fineduguide/fineduguide/core/textclean"
	"github.com/fineduguide/fineduguide/internal/dao"
	gormModel "github.com/fineduguide/fineduguide/internal/model/gorm"
	"github.com/fineduguide/fineduguide/internal/service"
)

// Result 上传处理结果
type Result struct {
	DocumentID string
	FileName   string
	ChunkCount int
}

// ProcessUpload 完整的文档入库流程
// 校验 -> 暂存 -> 去重 -> 提取 -> 清洗 -> 分块 -> 对象存储 -> 向量化入库 -> 落库记录
func ProcessUpload(ctx context.Context, file *ghttp.UploadFile, pdfMethod string) (*Result, error) {
	if file == nil {
		return nil, errors.New(errors.ErrInvalidParameter, "file is required")
	}

	fileName := filepath.Base(file.Filename)
	fileExt := strings.ToLower(filepath.Ext(fileName))

	// 第一步：扩展名与处理方式校验，不合法的请求不做任何实际工作
	if fileExt != ".pdf" && fileExt != ".txt" {
		return nil, errors.New(errors.ErrUnsupportedFormat, "Unsupported file type. Upload PDF or TXT only.")
	}

	var method extract.PDFMethod
	if fileExt == ".pdf" {
		if strings.TrimSpace(pdfMethod) == "" {
			return nil, errors.New(errors.ErrInvalidParameter, "pdf_processing_method is required for PDF files")
		}
		var err error
		method, err = extract.ParsePDFMethod(pdfMethod)
		if err != nil {
			return nil, err
		}
	}

	// 第二步：内容去重
	fileSha256, err := common.CalculateFileSHA256(file.FileHeader)
	if err != nil {
		g.Log().Errorf(ctx, "failed to calculate file sha256: %v", err)
		return nil, errors.Newf(errors.ErrFileReadFailed, "failed to read uploaded file: %v", err)
	}

	existingDoc, err := dao.UploadDocuments.GetBySHA256(ctx, fileSha256)
	if err != nil {
		g.Log().Errorf(ctx, "failed to query existing document: %v", err)
		// 去重查询失败不中断上传流程
	} else if existingDoc != nil && existingDoc.Status == gormModel.DocumentStatusActive {
		g.Log().Infof(ctx, "file already exists, SHA256: %s, upload rejected", fileSha256)
		return nil, errors.New(errors.ErrAlreadyExists, "File already exists, upload rejected")
	}

	// 第三步：暂存到临时目录，处理完成后整体清理
	tempDir, err := os.MkdirTemp("", "fineduguide-upload-*")
	if err != nil {
		return nil, errors.Newf(errors.ErrInternalError, "failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	localPath, err := stageFile(file, tempDir, fileName)
	if err != nil {
		return nil, err
	}

	// 第四步：提取、清洗、分块
	rawText, err := service.Extractor(ctx).Extract(ctx, localPath, method)
	if err != nil {
		return nil, err
	}

	cleaned := textclean.Clean(rawText)
	if cleaned == "" {
		g.Log().Warningf(ctx, "no text content extracted from %s", fileName)
		return nil, errors.New(errors.ErrExtractionFailed, "Failed to process file")
	}

	chunkingCfg := config.LoadChunkingConfig(ctx)
	chunks, err := chunker.Split(cleaned, fileName, chunkingCfg.ChunkSize, chunkingCfg.ChunkOverlap)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, errors.New(errors.ErrExtractionFailed, "Failed to process file")
	}

	// 第五步：原始文件归档到对象存储
	storageCfg := file_store.GetStorageConfig()
	objectKey, err := file_store.UploadFile(ctx, storageCfg.Client, storageCfg.BucketName, fileName, localPath)
	if err != nil {
		g.Log().Errorf(ctx, "failed to upload file to storage: %v", err)
		return nil, errors.New(errors.ErrFileUploadFailed, "Failed to upload file to storage")
	}

	// 第六步：落库记录，初始状态 pending
	doc := &gormModel.UploadDocuments{
		ID:            strings.ReplaceAll(uuid.New().String(), "-", ""),
		FileName:      fileName,
		FileExtension: fileExt,
		SHA256:        fileSha256,
		Bucket:        storageCfg.BucketName,
		ObjectKey:     objectKey,
		Status:        gormModel.DocumentStatusPending,
	}
	if err = dao.UploadDocuments.Create(ctx, doc); err != nil {
		g.Log().Errorf(ctx, "failed to save document record: %v", err)
		return nil, err
	}

	// 第七步：向量化并写入向量库
	ix, err := service.Indexer(ctx)
	if err != nil {
		_ = dao.UploadDocuments.UpdateStatus(ctx, doc.ID, gormModel.DocumentStatusFailed, 0)
		return nil, err
	}

	ok, err := ix.StoreChunks(ctx, service.CollectionName(ctx), chunks)
	if err != nil {
		_ = dao.UploadDocuments.UpdateStatus(ctx, doc.ID, gormModel.DocumentStatusFailed, 0)
		return nil, err
	}
	if !ok {
		_ = dao.UploadDocuments.UpdateStatus(ctx, doc.ID, gormModel.DocumentStatusFailed, 0)
		return nil, errors.New(errors.ErrVectorInsert, "Failed to store document embeddings")
	}

	if err = dao.UploadDocuments.UpdateStatus(ctx, doc.ID, gormModel.DocumentStatusActive, len(chunks)); err != nil {
		g.Log().Errorf(ctx, "failed to update document status: %v", err)
	}

	g.Log().Infof(ctx, "document %s processed: %d chunks stored", fileName, len(chunks))
	return &Result{
		DocumentID: doc.ID,
		FileName:   fileName,
		ChunkCount: len(chunks),
	}, nil
}

// stageFile 把上传文件写入临时目录
func stageFile(file *ghttp.UploadFile, tempDir string, fileName string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", errors.Newf(errors.ErrFileReadFailed, "failed to open uploaded file: %v", err)
	}
	defer src.Close()

	localPath := filepath.Join(tempDir, fileName)
	dst, err := os.Create(localPath)
	if err != nil {
		return "", errors.Newf(errors.ErrInternalError, "failed to create temp file: %v", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", errors.Newf(errors.ErrInternalError, "failed to write temp file: %v", err)
	}
	return localPath, nil
}

package fineduguide

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"
	"gorm.io/gorm"

	v1 "github.com/fineduguide/fineduguide/api/fineduguide/v1"
	"github.com/fineduguide/fineduguide/core/errors"
	"github.com/fineduguide/fineduguide/core/file_store"
	"github.com/fineduguide/fineduguide/internal/dao"
	gormModel "github.com/fineduguide/fineduguide/internal/model/gorm"
	"github.com/fineduguide/fineduguide/internal/service"
)

// DocumentsList returns the ingested document catalog.
func (c *ControllerV1) DocumentsList(ctx context.Context, req *v1.DocumentsListReq) (res *v1.DocumentsListRes, err error) {
	docs, err := dao.UploadDocuments.List(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]v1.DocumentInfo, 0, len(docs))
	for _, doc := range docs {
		info := v1.DocumentInfo{
			ID:            doc.ID,
			FileName:      doc.FileName,
			FileExtension: doc.FileExtension,
			ChunkCount:    doc.ChunkCount,
			Status:        doc.Status,
		}
		if doc.CreateTime != nil {
			info.CreateTime = doc.CreateTime.Format("2006-01-02 15:04:05")
		}
		data = append(data, info)
	}

	return &v1.DocumentsListRes{
		Data:  data,
		Total: len(data),
	}, nil
}

// DocumentsDelete removes a document record, its stored file and its vector chunks.
func (c *ControllerV1) DocumentsDelete(ctx context.Context, req *v1.DocumentsDeleteReq) (res *v1.DocumentsDeleteRes, err error) {
	var doc gormModel.UploadDocuments
	err = dao.GetDB().WithContext(ctx).Where("id = ?", req.DocumentId).First(&doc).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.New(errors.ErrNotFound, "document not found")
		}
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to query document: %v", err)
	}

	// Remove vector chunks first so stale results never reference a deleted file.
	store, err := service.VectorStore(ctx)
	if err != nil {
		return nil, err
	}
	if err = store.DeleteBySource(ctx, service.CollectionName(ctx), doc.FileName); err != nil {
		g.Log().Errorf(ctx, "failed to delete chunks of %s: %v", doc.FileName, err)
		return nil, errors.Newf(errors.ErrVectorDelete, "failed to delete document chunks: %v", err)
	}

	if doc.ObjectKey != "" {
		storageCfg := file_store.GetStorageConfig()
		if err = file_store.DeleteObject(ctx, storageCfg.Client, doc.Bucket, doc.ObjectKey); err != nil {
			g.Log().Errorf(ctx, "failed to delete stored object %s: %v", doc.ObjectKey, err)
			// 对象删除失败不阻断记录清理
		}
	}

	if err = dao.UploadDocuments.Delete(ctx, doc.ID); err != nil {
		return nil, err
	}

	g.Log().Infof(ctx, "document %s (%s) deleted", doc.ID, doc.FileName)
	return &v1.DocumentsDeleteRes{}, nil
}

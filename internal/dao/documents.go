package dao

import (
	"context"

	"gorm.io/gorm"

	"github.com/fineduguide/fineduguide/core/errors"
	gormModel "github.com/fineduguide/fineduguide/internal/model/gorm"
)

// UploadDocuments 上传文档目录的数据访问入口
var UploadDocuments = uploadDocumentsDao{}

type uploadDocumentsDao struct{}

// Create 新增一条文档记录
func (uploadDocumentsDao) Create(ctx context.Context, doc *gormModel.UploadDocuments) error {
	if err := GetDB().WithContext(ctx).Create(doc).Error; err != nil {
		return errors.Newf(errors.ErrDatabaseInsert, "failed to create document record: %v", err)
	}
	return nil
}

// GetBySHA256 按内容哈希查找记录，不存在时返回 (nil, nil)
func (uploadDocumentsDao) GetBySHA256(ctx context.Context, sha256 string) (*gormModel.UploadDocuments, error) {
	var doc gormModel.UploadDocuments
	err := GetDB().WithContext(ctx).Where("sha256 = ?", sha256).First(&doc).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to query document by sha256: %v", err)
	}
	return &doc, nil
}

// GetByFileName 按文件名查找记录，不存在时返回 (nil, nil)
func (uploadDocumentsDao) GetByFileName(ctx context.Context, fileName string) (*gormModel.UploadDocuments, error) {
	var doc gormModel.UploadDocuments
	err := GetDB().WithContext(ctx).Where("file_name = ?", fileName).First(&doc).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to query document by file name: %v", err)
	}
	return &doc, nil
}

// List 按创建时间倒序返回全部文档记录
func (uploadDocumentsDao) List(ctx context.Context) ([]*gormModel.UploadDocuments, error) {
	var docs []*gormModel.UploadDocuments
	err := GetDB().WithContext(ctx).Order("create_time DESC").Find(&docs).Error
	if err != nil {
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to list documents: %v", err)
	}
	return docs, nil
}

// UpdateStatus 更新文档状态与分块数量
func (uploadDocumentsDao) UpdateStatus(ctx context.Context, id string, status int8, chunkCount int) error {
	err := GetDB().WithContext(ctx).Model(&gormModel.UploadDocuments{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"chunk_count": chunkCount,
		}).Error
	if err != nil {
		return errors.Newf(errors.ErrDatabaseUpdate, "failed to update document status: %v", err)
	}
	return nil
}

// Delete 删除文档记录
func (uploadDocumentsDao) Delete(ctx context.Context, id string) error {
	err := GetDB().WithContext(ctx).Where("id = ?", id).Delete(&gormModel.UploadDocuments{}).Error
	if err != nil {
		return errors.Newf(errors.ErrDatabaseUpdate, "failed to delete document record: %v", err)
	}
	return nil
}

package gorm

import (
	"time"
)

// 文档目录状态
const (
	DocumentStatusPending int8 = 0 // 已接收，尚未完成入库
	DocumentStatusActive  int8 = 1 // 入库完成，可被检索
	DocumentStatusFailed  int8 = 2 // 入库失败
)

// UploadDocuments GORM模型定义，上传文档目录
type UploadDocuments struct {
	ID            string     `gorm:"primaryKey;column:id;type:varchar(255)"`
	FileName      string     `gorm:"column:file_name;type:varchar(255);not null"`
	FileExtension string     `gorm:"column:file_extension;type:varchar(16)"`
	SHA256        string     `gorm:"column:sha256;type:varchar(64);index"`
	Bucket        string     `gorm:"column:bucket;type:varchar(255)"`
	ObjectKey     string     `gorm:"column:object_key;type:varchar(512)"`
	ChunkCount    int        `gorm:"column:chunk_count;type:int;not null;default:0"`
	Status        int8       `gorm:"column:status;type:tinyint;not null;default:0"`
	CreateTime    *time.Time `gorm:"column:create_time;type:timestamp;autoCreateTime"`
	UpdateTime    *time.Time `gorm:"column:update_time;type:timestamp;autoUpdateTime"`
}

// TableName 设置表名
func (UploadDocuments) TableName() string {
	return "upload_documents"
}

package file_store

import (
	"context"
	"io"
	"net/http"
	"os"
	"path"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/fineduguide/fineduguide/core/errors"
)

// StorageConfig 对象存储配置
type StorageConfig struct {
	Client     *minio.Client
	BucketName string
}

var storageConfig StorageConfig

// InitObjectStore 初始化对象存储并确保bucket存在
// 配置项 storage.endpoint / storage.accessKey / storage.secretKey / storage.bucket / storage.ssl
func InitObjectStore(ctx context.Context) error {
	endpoint := g.Cfg().MustGet(ctx, "storage.endpoint", "").String()
	accessKey := g.Cfg().MustGet(ctx, "storage.accessKey", "").String()
	secretKey := g.Cfg().MustGet(ctx, "storage.secretKey", "").String()
	bucketName := g.Cfg().MustGet(ctx, "storage.bucket", "").String()
	ssl := g.Cfg().MustGet(ctx, "storage.ssl", false).Bool()

	if endpoint == "" || bucketName == "" {
		return errors.New(errors.ErrInternalError, "storage.endpoint and storage.bucket are required")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: ssl,
	})
	if err != nil {
		return errors.Newf(errors.ErrInternalError, "failed to create MinIO client: %v", err)
	}

	storageConfig = StorageConfig{
		Client:     client,
		BucketName: bucketName,
	}

	// 创建 bucket，如果已存在则跳过
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return errors.Newf(errors.ErrInternalError, "failed to check if bucket exists: %v", err)
	}
	if exists {
		g.Log().Infof(ctx, "Bucket '%s' already exists, skipping creation.", bucketName)
		return nil
	}

	err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: ""})
	if err != nil {
		return errors.Newf(errors.ErrInternalError, "failed to create bucket: %v", err)
	}

	g.Log().Infof(ctx, "Created bucket '%s'", bucketName)
	return nil
}

// GetStorageConfig 获取对象存储配置
func GetStorageConfig() *StorageConfig {
	return &storageConfig
}

// UploadFile 把本地文件上传到对象存储，返回对象key
// 对象路径为 documents/<fileName>
func UploadFile(ctx context.Context, client *minio.Client, bucketName string, fileName string, localPath string) (string, error) {
	objectKey := path.Join("documents", fileName)

	uploadFile, err := os.Open(localPath)
	if err != nil {
		g.Log().Errorf(ctx, "Failed to open local file for upload: %v", err)
		return "", errors.Newf(errors.ErrFileReadFailed, "failed to open local file for upload: %v", err)
	}
	defer uploadFile.Close()

	stat, err := uploadFile.Stat()
	if err != nil {
		g.Log().Errorf(ctx, "Failed to get file stat: %v", err)
		return "", errors.Newf(errors.ErrFileReadFailed, "failed to get file stat: %v", err)
	}
	fileSize := stat.Size()

	// 检测内容类型
	buffer := make([]byte, 512)
	_, err = uploadFile.Read(buffer)
	if err != nil && err != io.EOF {
		g.Log().Errorf(ctx, "Failed to read file header: %v", err)
		return "", errors.Newf(errors.ErrFileReadFailed, "failed to read file header: %v", err)
	}

	// 重置文件指针到开头
	_, err = uploadFile.Seek(0, 0)
	if err != nil {
		g.Log().Errorf(ctx, "Failed to seek file to beginning: %v", err)
		return "", errors.Newf(errors.ErrFileReadFailed, "failed to seek file to beginning: %v", err)
	}

	contentType := http.DetectContentType(buffer)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = client.PutObject(ctx, bucketName, objectKey, uploadFile, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		g.Log().Errorf(ctx, "Failed to upload file to object store: %v", err)
		return "", errors.Newf(errors.ErrFileUploadFailed, "failed to upload file to storage: %v", err)
	}

	g.Log().Infof(ctx, "File uploaded to object store: bucket=%s, key=%s", bucketName, objectKey)
	return objectKey, nil
}

// DownloadFile 从 bucket 下载文件到本地
func DownloadFile(ctx context.Context, client *minio.Client, bucketName, objectName, destFile string) error {
	err := client.FGetObject(ctx, bucketName, objectName, destFile, minio.GetObjectOptions{})
	if err != nil {
		return errors.Newf(errors.ErrFileReadFailed, "failed to download file %s: %v", objectName, err)
	}
	g.Log().Infof(ctx, "Downloaded '%s' from bucket '%s' to '%s'", objectName, bucketName, destFile)
	return nil
}

// DeleteObject 删除指定的对象
func DeleteObject(ctx context.Context, client *minio.Client, bucketName, objectName string) error {
	err := client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Newf(errors.ErrFileDeleteFailed, "failed to delete object %s: %v", objectName, err)
	}
	g.Log().Infof(ctx, "Deleted object '%s' from bucket '%s'", objectName, bucketName)
	return nil
}

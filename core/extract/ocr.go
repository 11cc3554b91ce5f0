package extract

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/gclient"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/fineduguide/fineduguide/core/errors"
)

// OCRClient 调用外部OCR服务识别扫描版PDF
// 本进程只负责把PDF逐页导出为图片，识别由独立服务完成
type OCRClient struct {
	ocrURL    string
	languages []string
	client    *gclient.Client
}

// ocrRequest OCR服务的请求结构
type ocrRequest struct {
	ImagePath string   `json:"image_path"`
	Languages []string `json:"languages"`
}

// ocrResponse OCR服务的响应结构
type ocrResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
	Message string `json:"message,omitempty"`
}

// ocrHealthResponse OCR服务健康检查响应结构
type ocrHealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

// NewOCRClient 创建OCR客户端
// 配置项 ocr.url / ocr.timeout / ocr.languages
func NewOCRClient(ctx context.Context) *OCRClient {
	ocrURL := g.Cfg().MustGet(ctx, "ocr.url", "http://localhost:8003").String()
	timeout := g.Cfg().MustGet(ctx, "ocr.timeout", 600).Int()
	languages := g.Cfg().MustGet(ctx, "ocr.languages", []string{"en"}).Strings()

	client := g.Client()
	client.SetTimeout(time.Duration(timeout) * time.Second)
	client.Transport = &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		DisableKeepAlives:     false,
		ResponseHeaderTimeout: time.Duration(timeout) * time.Second,
	}

	return &OCRClient{
		ocrURL:    ocrURL,
		languages: languages,
		client:    client,
	}
}

// CheckHealth 检查OCR服务健康状态
func (c *OCRClient) CheckHealth(ctx context.Context) error {
	healthURL := fmt.Sprintf("%s/health", c.ocrURL)

	resp, err := c.client.Get(ctx, healthURL)
	if err != nil {
		return fmt.Errorf("ocr server is not running or unreachable: %w", err)
	}
	defer resp.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ocr server health check failed with status %d", resp.StatusCode)
	}

	var healthResp ocrHealthResponse
	if err := sonic.Unmarshal(resp.ReadAll(), &healthResp); err != nil {
		return fmt.Errorf("failed to unmarshal health check response: %w", err)
	}

	if healthResp.Status != "healthy" {
		return fmt.Errorf("ocr server is not healthy: status=%s", healthResp.Status)
	}

	g.Log().Infof(ctx, "ocr server is healthy: %s (version: %s)", healthResp.Message, healthResp.Version)
	return nil
}

// RecognizeImage 识别单张图片，返回识别出的文本
func (c *OCRClient) RecognizeImage(ctx context.Context, imagePath string) (string, error) {
	req := ocrRequest{
		ImagePath: imagePath,
		Languages: c.languages,
	}

	recognizeURL := fmt.Sprintf("%s/recognize", c.ocrURL)
	resp, err := c.client.ContentJson().Post(ctx, recognizeURL, req)
	if err != nil {
		if os.IsTimeout(err) {
			return "", fmt.Errorf("ocr request timeout: %w", err)
		}
		return "", fmt.Errorf("failed to call ocr service: %w", err)
	}
	defer resp.Close()

	if resp.StatusCode != http.StatusOK {
		body := resp.ReadAllString()
		g.Log().Errorf(ctx, "ocr service error response: %s", body)
		return "", fmt.Errorf("ocr service returned error status %d: %s", resp.StatusCode, body)
	}

	var ocrResp ocrResponse
	if err := sonic.Unmarshal(resp.ReadAll(), &ocrResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal ocr response: %w", err)
	}
	if !ocrResp.Success {
		return "", fmt.Errorf("ocr service returned success=false: %s", ocrResp.Message)
	}

	return ocrResp.Text, nil
}

// extractPDFOCR 把PDF逐页导出为图片并交给OCR服务识别
func (e *Extractor) extractPDFOCR(ctx context.Context, filePath string) (string, error) {
	if err := e.ocr.CheckHealth(ctx); err != nil {
		g.Log().Errorf(ctx, "ocr server health check failed: %v", err)
		return "", errors.Newf(errors.ErrOCRFailed, "ocr server is not running: %v", err)
	}

	imageDir, err := os.MkdirTemp("", "fineduguide-ocr-*")
	if err != nil {
		return "", errors.Newf(errors.ErrOCRFailed, "failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(imageDir)

	// 导出每页图片，文件名带页码，按页码数值排序后即为页序
	conf := model.NewDefaultConfiguration()
	if err := api.ExtractImagesFile(filePath, imageDir, nil, conf); err != nil {
		g.Log().Errorf(ctx, "failed to extract page images from %s: %v", filePath, err)
		return "", errors.Newf(errors.ErrOCRFailed, "failed to extract page images from PDF: %v", err)
	}

	entries, err := os.ReadDir(imageDir)
	if err != nil {
		return "", errors.Newf(errors.ErrOCRFailed, "failed to list page images: %v", err)
	}

	imagePaths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		imagePaths = append(imagePaths, filepath.Join(imageDir, entry.Name()))
	}
	if len(imagePaths) == 0 {
		return "", errors.New(errors.ErrOCRFailed, "no page images extracted from PDF")
	}
	sortImagesByPage(imagePaths)

	startTime := time.Now()
	var sb strings.Builder
	for _, imagePath := range imagePaths {
		text, err := e.ocr.RecognizeImage(ctx, imagePath)
		if err != nil {
			return "", errors.Newf(errors.ErrOCRFailed, "ocr recognition failed for %s: %v", filepath.Base(imagePath), err)
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(text)
	}

	g.Log().Infof(ctx, "ocr extraction finished for %s: %d pages (took %v)",
		filepath.Base(filePath), len(imagePaths), time.Since(startTime))
	return sb.String(), nil
}

// pageNumber 从导出的图片文件名中解析页码
// pdfcpu 命名格式为 <文件名>_<页码>_<图片ID>.<扩展名>，页码不补零
func pageNumber(fileName string) int {
	name := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	parts := strings.Split(name, "_")
	if len(parts) < 2 {
		return -1
	}
	n, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return -1
	}
	return n
}

// sortImagesByPage 按页码数值排序
// 页码不补零，字典序会把第10页排到第2页之前，不能直接 sort.Strings
// 同页多张图片保持原有（字典）顺序
func sortImagesByPage(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return pageNumber(filepath.Base(paths[i])) < pageNumber(filepath.Base(paths[j]))
	})
}

package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fineduguide/fineduguide/core/errors"
	"github.com/gogf/gf/v2/frame/g"
)

// PDFMethod PDF文本提取方式
type PDFMethod string

const (
	// PDFMethodStandard 标准文本层提取，适用于数字原生PDF
	PDFMethodStandard PDFMethod = "standard text extraction"
	// PDFMethodOCR OCR提取，适用于扫描件，依赖外部OCR服务
	PDFMethodOCR PDFMethod = "ocr based extraction"
)

// ParsePDFMethod 解析PDF处理方式，忽略大小写与首尾空白
func ParsePDFMethod(s string) (PDFMethod, error) {
	switch PDFMethod(strings.ToLower(strings.TrimSpace(s))) {
	case PDFMethodStandard:
		return PDFMethodStandard, nil
	case PDFMethodOCR:
		return PDFMethodOCR, nil
	default:
		return "", errors.Newf(errors.ErrInvalidParameter,
			"Invalid PDF processing method. Valid options are: '%s', '%s'", PDFMethodStandard, PDFMethodOCR)
	}
}

// Extractor 从上传文件中提取原始文本
type Extractor struct {
	ocr *OCRClient
}

func NewExtractor(ctx context.Context) *Extractor {
	return &Extractor{
		ocr: NewOCRClient(ctx),
	}
}

// Extract 根据文件扩展名和处理方式提取文本
// pdfMethod 仅对PDF文件生效，TXT文件忽略该参数
func (e *Extractor) Extract(ctx context.Context, filePath string, pdfMethod PDFMethod) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".txt":
		return e.extractTxt(ctx, filePath)
	case ".pdf":
		switch pdfMethod {
		case PDFMethodStandard:
			return e.extractPDFStandard(ctx, filePath)
		case PDFMethodOCR:
			return e.extractPDFOCR(ctx, filePath)
		default:
			return "", errors.New(errors.ErrInvalidParameter, "pdf_processing_method is required for PDF files")
		}
	default:
		return "", errors.New(errors.ErrUnsupportedFormat, "Unsupported file type. Upload PDF or TXT only.")
	}
}

// extractTxt 读取纯文本文件，要求内容是合法UTF-8
func (e *Extractor) extractTxt(ctx context.Context, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", errors.Newf(errors.ErrFileReadFailed, "failed to read file: %v", err)
	}
	if !utf8.Valid(data) {
		g.Log().Warningf(ctx, "file %s is not valid UTF-8", filepath.Base(filePath))
		return "", errors.New(errors.ErrDecodeFailed, "file content is not valid UTF-8 text")
	}
	return string(data), nil
}

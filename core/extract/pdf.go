package extract

import (
	"context"
	"os"
	"strings"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	"github.com/gogf/gf/v2/frame/g"

	"github.com/fineduguide/fineduguide/core/errors"
)

// extractPDFStandard 提取PDF自带文本层，按页拼接
func (e *Extractor) extractPDFStandard(ctx context.Context, filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", errors.Newf(errors.ErrFileReadFailed, "failed to open file: %v", err)
	}
	defer f.Close()

	pdfParser, err := pdf.NewPDFParser(ctx, &pdf.Config{ToPages: true})
	if err != nil {
		return "", errors.Newf(errors.ErrExtractionFailed, "failed to create pdf parser: %v", err)
	}

	docs, err := pdfParser.Parse(ctx, f)
	if err != nil {
		g.Log().Errorf(ctx, "pdf text extraction failed for %s: %v", filePath, err)
		return "", errors.Newf(errors.ErrExtractionFailed, "failed to extract text from PDF: %v", err)
	}

	var sb strings.Builder
	for i, doc := range docs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(doc.Content)
	}

	g.Log().Infof(ctx, "extracted %d pages of text from %s", len(docs), filePath)
	return sb.String(), nil
}

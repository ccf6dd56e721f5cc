package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"

	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/logger"
)

// LedongPDFExtractor 基于 ledongthuc/pdf 的备用解析策略
// 纯Go实现、不依赖外部服务，作为主策略失败时的兜底
type LedongPDFExtractor struct {
	logger zerolog.Logger
}

// LedongOption 备用解析器的配置选项
type LedongOption func(*LedongPDFExtractor)

// WithLedongLogger 配置自定义日志记录器
func WithLedongLogger(l zerolog.Logger) LedongOption {
	return func(e *LedongPDFExtractor) {
		e.logger = l
	}
}

// 确保LedongPDFExtractor实现了PDFExtractor接口
var _ PDFExtractor = (*LedongPDFExtractor)(nil)

// NewLedongPDFExtractor 创建备用PDF解析器
func NewLedongPDFExtractor(options ...LedongOption) *LedongPDFExtractor {
	extractor := &LedongPDFExtractor{
		logger: logger.Logger,
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor
}

// ExtractFromFile 从PDF文件提取文本和元数据
func (e *LedongPDFExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("读取PDF文件失败 %s: %w", filePath, err)
	}
	return e.ExtractTextFromBytes(ctx, data, filePath, nil)
}

// ExtractTextFromReader 从io.Reader提取文本和元数据
func (e *LedongPDFExtractor) ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string, options interface{}) (string, map[string]interface{}, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", nil, fmt.Errorf("读取PDF内容失败: %w", err)
	}
	return e.ExtractTextFromBytes(ctx, data, uri, options)
}

// ExtractTextFromBytes 从字节数组提取文本和元数据
// 逐页提取纯文本，单页失败跳过不中断：OCR噪声页在简历场景很常见
func (e *LedongPDFExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string, options interface{}) (string, map[string]interface{}, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	pdfReader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, fmt.Errorf("ledongthuc PDF reader failed for URI %s: %w", uri, err)
	}

	var buf strings.Builder
	numPages := pdfReader.NumPage()
	skipped := 0
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			skipped++
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			skipped++
			continue
		}
		if i > 1 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}

	metadata := metaFromOptions(options)
	metadata["page_count"] = numPages
	metadata["pages_skipped"] = skipped
	metadata["text_length"] = buf.Len()

	e.logger.Debug().
		Str("uri", uri).
		Int("pages", numPages).
		Int("skipped", skipped).
		Int("chars", buf.Len()).
		Msg("备用PDF解析完成")
	return buf.String(), metadata, nil
}

package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/logger"
)

// PDFExtractor PDF提取器接口
type PDFExtractor interface {
	// ExtractFromFile 从PDF文件提取文本和元数据
	ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error)

	// ExtractTextFromReader 从io.Reader提取文本和元数据
	// uri 为资源标识符，仅用于日志和元数据；options 为可选的解析配置
	ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string, options interface{}) (string, map[string]interface{}, error)

	// ExtractTextFromBytes 从字节数组提取文本和元数据
	ExtractTextFromBytes(ctx context.Context, data []byte, uri string, options interface{}) (string, map[string]interface{}, error)
}

// 定义基础错误类型
var (
	// ErrEmptyExtraction 解析成功但没有得到任何文本
	ErrEmptyExtraction = errors.New("PDF解析结果为空")
	// ErrAllExtractorsFailed 所有解析策略都失败或输出为空
	ErrAllExtractorsFailed = errors.New("所有PDF解析策略均失败")
)

// FallbackPDFExtractor 按序尝试多个独立解析策略的组合提取器
// 第一个返回非空文本的策略胜出；全部失败或为空时返回 ErrAllExtractorsFailed
type FallbackPDFExtractor struct {
	chain  []PDFExtractor
	logger zerolog.Logger
}

// FallbackOption 组合提取器的配置选项
type FallbackOption func(*FallbackPDFExtractor)

// WithFallbackLogger 配置自定义日志记录器
func WithFallbackLogger(l zerolog.Logger) FallbackOption {
	return func(f *FallbackPDFExtractor) {
		f.logger = l
	}
}

// 确保FallbackPDFExtractor实现了PDFExtractor接口
var _ PDFExtractor = (*FallbackPDFExtractor)(nil)

// NewFallbackPDFExtractor 创建组合提取器，按传入顺序尝试各策略
func NewFallbackPDFExtractor(extractors []PDFExtractor, options ...FallbackOption) (*FallbackPDFExtractor, error) {
	if len(extractors) == 0 {
		return nil, fmt.Errorf("组合提取器至少需要一个解析策略")
	}
	f := &FallbackPDFExtractor{
		chain:  extractors,
		logger: logger.Logger,
	}
	for _, option := range options {
		option(f)
	}
	return f, nil
}

// ExtractFromFile 从PDF文件提取文本和元数据
func (f *FallbackPDFExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("读取PDF文件失败 %s: %w", filePath, err)
	}
	return f.ExtractTextFromBytes(ctx, data, filePath, nil)
}

// ExtractTextFromReader 从io.Reader提取文本和元数据
func (f *FallbackPDFExtractor) ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string, options interface{}) (string, map[string]interface{}, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", nil, fmt.Errorf("读取PDF内容失败: %w", err)
	}
	return f.ExtractTextFromBytes(ctx, data, uri, options)
}

// ExtractTextFromBytes 按序尝试各解析策略，返回第一个非空结果
func (f *FallbackPDFExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string, options interface{}) (string, map[string]interface{}, error) {
	var lastErr error
	for i, extractor := range f.chain {
		text, metadata, err := extractor.ExtractTextFromBytes(ctx, data, uri, options)
		if err == nil && strings.TrimSpace(text) != "" {
			if i > 0 {
				f.logger.Info().
					Int("strategy_index", i).
					Str("uri", uri).
					Msg("主解析策略无输出，备用策略成功")
			}
			return text, metadata, nil
		}
		if err == nil {
			err = ErrEmptyExtraction
		}
		lastErr = err
		f.logger.Warn().
			Err(err).
			Int("strategy_index", i).
			Str("uri", uri).
			Msg("PDF解析策略失败，尝试下一个")
	}
	return "", nil, fmt.Errorf("%w (URI: %s): %w", ErrAllExtractorsFailed, uri, lastErr)
}

package handler

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/analyzer"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/config"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/constants"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/logger"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/parser"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/question"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/types"
)

// 对外错误类别，序列化进错误响应的 type 字段
const (
	ErrTypeUpload     = "upload_error"
	ErrTypeValidation = "validation_error"
	ErrTypeSize       = "size_error"
	ErrTypeProcessing = "processing_error"
)

// APIError 面向客户端的错误，携带HTTP状态码与错误类别
type APIError struct {
	Status  int    `json:"-"`
	Type    string `json:"type"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return e.Message
}

// ResumeHandler 简历分析处理器，负责协调一次分析请求的处理流程
type ResumeHandler struct {
	cfg       *config.Config
	extractor parser.PDFExtractor
	analyzer  *analyzer.Analyzer
	generator *question.Generator
}

// NewResumeHandler 创建一个新的简历分析处理器
func NewResumeHandler(
	cfg *config.Config,
	extractor parser.PDFExtractor,
	resumeAnalyzer *analyzer.Analyzer,
	generator *question.Generator,
) *ResumeHandler {
	return &ResumeHandler{
		cfg:       cfg,
		extractor: extractor,
		analyzer:  resumeAnalyzer,
		generator: generator,
	}
}

// HandleResumeAnalyze 处理一次简历上传分析请求
// 流程：扩展名/大小校验 → PDF文本提取 → 章节存在性校验 → 分析流水线 → 问题生成
// 返回的error若为*APIError则携带对客户端友好的状态码与消息
func (h *ResumeHandler) HandleResumeAnalyze(ctx context.Context, reader io.Reader, fileSize int64,
	filename string) (*types.AnalysisResponse, error) {

	if !h.allowedExtension(filename) {
		return nil, &APIError{
			Status:  400,
			Type:    ErrTypeValidation,
			Message: "Invalid file type. Only PDF files are supported.",
		}
	}

	maxBytes := int64(h.cfg.Upload.MaxFileSizeMB) << 20
	if fileSize > maxBytes {
		return nil, &APIError{
			Status:  413,
			Type:    ErrTypeSize,
			Message: fmt.Sprintf("File too large. Maximum file size is %dMB.", h.cfg.Upload.MaxFileSizeMB),
		}
	}

	fileBytes, err := io.ReadAll(io.LimitReader(reader, maxBytes+1))
	if err != nil {
		return nil, &APIError{
			Status:  400,
			Type:    ErrTypeUpload,
			Message: "Failed to read the uploaded file. Please try again.",
		}
	}
	if int64(len(fileBytes)) > maxBytes {
		return nil, &APIError{
			Status:  413,
			Type:    ErrTypeSize,
			Message: fmt.Sprintf("File too large. Maximum file size is %dMB.", h.cfg.Upload.MaxFileSizeMB),
		}
	}

	analysisID := uuid.Must(uuid.NewV4()).String()

	text, _, err := h.extractor.ExtractTextFromBytes(ctx, fileBytes, filename, nil)
	if err != nil || strings.TrimSpace(text) == "" {
		logger.Warn().
			Err(err).
			Str("analysis_id", analysisID).
			Str("filename", filename).
			Msg("PDF文本提取失败或结果为空")
		return nil, &APIError{
			Status:  400,
			Type:    ErrTypeValidation,
			Message: "Unable to extract text from PDF. Please ensure the file is not corrupted or password-protected.",
		}
	}

	presence := h.analyzer.ValidateSections(text)
	if missing := presence.Missing(); len(missing) > constants.MaxMissingSections {
		logger.Info().
			Str("analysis_id", analysisID).
			Strs("missing_sections", missing).
			Msg("简历缺少关键章节，拒绝处理")
		return nil, &APIError{
			Status:  400,
			Type:    ErrTypeValidation,
			Message: fmt.Sprintf("Please enter a valid industry resume. Missing key sections: %s.", strings.Join(missing, ", ")),
		}
	}

	record, err := h.analyzer.Analyze(text)
	if err != nil {
		logger.Error().
			Err(err).
			Str("analysis_id", analysisID).
			Msg("简历分析流水线失败")
		return nil, &APIError{
			Status:  400,
			Type:    ErrTypeValidation,
			Message: "The resume text could not be parsed. Please try a different file.",
		}
	}

	questions := h.generator.Generate(record)

	logger.Info().
		Str("analysis_id", analysisID).
		Str("candidate", record.CandidateName).
		Int("skills", len(record.Skills)).
		Int("questions", len(questions)).
		Msg("简历分析请求处理完成")

	return &types.AnalysisResponse{
		AnalysisID:    analysisID,
		Resume:        record,
		Questions:     questions,
		SectionsFound: presence,
	}, nil
}

// allowedExtension 检查文件扩展名是否在允许列表内
func (h *ResumeHandler) allowedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}
	for _, allowed := range h.cfg.Upload.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

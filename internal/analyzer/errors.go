package analyzer

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
// 提取歧义不是错误：提取器无法确定的字段一律退化为缺省值，静默处理。
// 只有结构上不可能的输入才会产生错误并向调用方传播
var (
	ErrInvalidInput = errors.New("简历文本不是合法的UTF-8编码")
)

// AnalyzeError 包含详细信息的分析错误
type AnalyzeError struct {
	Stage   string // 出错的流水线阶段
	BaseErr error
	Detail  string
}

func (e *AnalyzeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (阶段:%s): %s", e.BaseErr, e.Stage, e.Detail)
	}
	return fmt.Sprintf("%s (阶段:%s)", e.BaseErr, e.Stage)
}

func (e *AnalyzeError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *AnalyzeError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// NewInputError 构造输入类错误
func NewInputError(detail string) error {
	return &AnalyzeError{
		Stage:   "input",
		BaseErr: ErrInvalidInput,
		Detail:  detail,
	}
}

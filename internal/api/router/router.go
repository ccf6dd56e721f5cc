package router

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/api/handler"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, resumeHandler *handler.ResumeHandler) {
	api := h.Group("/api/v1")

	api.POST("/resume/analyze", func(c context.Context, ctx *app.RequestContext) {
		// 获取上传的简历文件
		fileHeader, err := ctx.FormFile("resume")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{
				"error": "No file uploaded. Please select a PDF file.",
				"type":  handler.ErrTypeUpload,
			})
			return
		}
		if fileHeader.Filename == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{
				"error": "No file selected. Please choose a PDF file.",
				"type":  handler.ErrTypeUpload,
			})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{
				"error": "Failed to open the uploaded file.",
				"type":  handler.ErrTypeProcessing,
			})
			return
		}
		defer file.Close()

		resp, err := resumeHandler.HandleResumeAnalyze(c, file, fileHeader.Size, fileHeader.Filename)
		if err != nil {
			var apiErr *handler.APIError
			if errors.As(err, &apiErr) {
				ctx.JSON(apiErr.Status, utils.H{"error": apiErr.Message, "type": apiErr.Type})
				return
			}
			ctx.JSON(consts.StatusInternalServerError, utils.H{
				"error": "An error occurred while processing your resume. Please try again.",
				"type":  handler.ErrTypeProcessing,
			})
			return
		}

		ctx.JSON(consts.StatusOK, utils.H{
			"success":  true,
			"analysis": resp,
		})
	})

	// 健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"

	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/analyzer"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/api/handler"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/api/router"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/config"
	appLogger "github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/logger"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/parser"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/question"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "internal/config/config.yaml", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pdfExtractor, err := buildExtractor(ctx, cfg)
	if err != nil {
		glog.Fatalf("初始化PDF提取器失败: %v", err)
	}
	glog.Info("PDF提取器初始化成功")

	resumeAnalyzer := analyzer.NewAnalyzer(cfg.Analyzer)
	glog.Info("简历分析器初始化成功")

	questionGenerator := question.NewGenerator(cfg.Question)
	glog.Info("面试问题生成器初始化成功")

	resumeHandler := handler.NewResumeHandler(cfg, pdfExtractor, resumeAnalyzer, questionGenerator)
	glog.Info("ResumeHandler初始化成功")

	maxBodySize := (cfg.Upload.MaxFileSizeMB + 1) << 20 // 预留multipart编码开销
	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(maxBodySize),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, resumeHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)
	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initLogger 初始化zerolog并桥接为Hertz的hlog实现
func initLogger(cfg *config.Config) {
	appLogger.Init(appLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	hertzCompatibleLogger := hertzadapter.From(appLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
}

// buildExtractor 按配置组装PDF解析策略链
// 主策略由配置决定（tika或eino），开启回退时追加纯Go的备用策略，
// 保证至少两个相互独立的提取路径
func buildExtractor(ctx context.Context, cfg *config.Config) (parser.PDFExtractor, error) {
	var chain []parser.PDFExtractor

	if cfg.PDF.Type == "tika" && cfg.PDF.Tika.ServerURL != "" {
		tikaOptions := []parser.TikaOption{}
		if cfg.PDF.Tika.Timeout > 0 {
			tikaOptions = append(tikaOptions, parser.WithTimeout(time.Duration(cfg.PDF.Tika.Timeout)*time.Second))
		}
		chain = append(chain, parser.NewTikaPDFExtractor(cfg.PDF.Tika.ServerURL, tikaOptions...))
		glog.Info("使用Tika PDF解析器作为主策略")
	} else {
		einoExtractor, err := parser.NewEinoPDFTextExtractor(ctx)
		if err != nil {
			return nil, err
		}
		chain = append(chain, einoExtractor)
		glog.Info("使用Eino PDF解析器作为主策略")
	}

	if cfg.PDF.EnableFallback {
		chain = append(chain, parser.NewLedongPDFExtractor())
		glog.Info("备用PDF解析器已启用")
	}

	return parser.NewFallbackPDFExtractor(chain)
}

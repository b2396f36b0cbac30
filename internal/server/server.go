package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/veritext/veritext/internal/config"
	"github.com/veritext/veritext/internal/core"
	"github.com/veritext/veritext/internal/core/oracle"
	"github.com/veritext/veritext/internal/extract"
	"github.com/veritext/veritext/internal/llm"
)

const maxUploadBytes = 16 << 20

type Server struct {
	Detector *core.Detector
	Registry *llm.Registry
	Config   *config.Config
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfgPath).Msg("config file not loaded, using defaults")
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	return NewServerWithConfig(cfg)
}

func NewServerWithConfig(cfg *config.Config) *Server {
	var registry *llm.Registry
	if cfg.LLM.Enabled {
		r, err := llm.NewRegistry(context.Background(), cfg.LLM)
		if err != nil {
			// The oracle is a best-effort signal; a broken provider config
			// must not take the lexical pipeline down with it.
			log.Warn().Err(err).Msg("llm client init failed, semantic analysis disabled")
			cfg.LLM.Enabled = false
		} else {
			registry = r
		}
	}

	var source oracle.ClientSource
	if registry != nil {
		source = registry
	}
	analyzer := oracle.NewAnalyzer(source, cfg.LLM)

	return &Server{
		Detector: core.NewDetector(cfg, analyzer),
		Registry: registry,
		Config:   cfg,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), cors())

	r.GET("/api/health", s.Health)
	r.POST("/api/check-plagiarism", s.CheckPlagiarism)
	r.POST("/api/check-document", s.CheckDocument)
	r.POST("/api/upload", s.Upload)
	r.GET("/api/models", s.GetModels)
	r.POST("/api/models", s.SwitchModel)

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.New().String()
		c.Set("request_id", requestID)

		c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

// cors mirrors the permissive policy the browser frontend expects.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"ollama_enabled": s.Detector.Oracle.Enabled(),
	})
}

type CheckPlagiarismRequest struct {
	Text1 string `json:"text1"`
	Text2 string `json:"text2"`
}

func (s *Server) CheckPlagiarism(c *gin.Context) {
	var req CheckPlagiarismRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	report, err := s.Detector.ComparePair(req.Text1, req.Text2)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both texts are required"})
		return
	}

	c.JSON(http.StatusOK, report)
}

type CheckDocumentRequest struct {
	Text    string            `json:"text"`
	Sources map[string]string `json:"sources"`
}

func (s *Server) CheckDocument(c *gin.Context) {
	var req CheckDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	report, err := s.Detector.CompareDocument(c.Request.Context(), req.Text, req.Sources)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Document text is required"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer f.Close()

	text, err := extract.FromUpload(header.Filename, f)
	if err != nil {
		log.Warn().Err(err).Str("filename", header.Filename).Msg("extraction failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filename": header.Filename,
		"text":     text,
	})
}

func (s *Server) GetModels(c *gin.Context) {
	if s.Registry == nil {
		c.JSON(http.StatusOK, gin.H{
			"current":   "",
			"available": []string{},
			"enabled":   false,
		})
		return
	}

	available, err := s.Registry.AvailableModels(c.Request.Context())
	if err != nil {
		log.Warn().Err(err).Msg("failed to list models")
		available = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"current":   s.Registry.Current(),
		"available": available,
		"enabled":   true,
	})
}

type SwitchModelRequest struct {
	Model string `json:"model"`
}

func (s *Server) SwitchModel(c *gin.Context) {
	var req SwitchModelRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Model == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Model name is required"})
		return
	}

	if s.Registry == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Semantic analysis is disabled"})
		return
	}

	if err := s.Registry.Switch(c.Request.Context(), req.Model); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, llm.ErrModelNotAvailable) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"current": s.Registry.Current()})
}

package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/ulimi/internal/audit"
	"github.com/agenthands/ulimi/internal/config"
	"github.com/agenthands/ulimi/internal/core"
	"github.com/agenthands/ulimi/internal/core/memory"
	"github.com/agenthands/ulimi/internal/core/provider"
	"github.com/agenthands/ulimi/internal/core/session"
	"github.com/agenthands/ulimi/internal/core/terms"
	"github.com/agenthands/ulimi/internal/driver"
	"github.com/agenthands/ulimi/internal/llm"
)

type Server struct {
	Pool      *session.Pool
	Memory    *memory.Memory
	Terms     *terms.Store
	Audit     *audit.Sink
	Cfg       *config.Config
	startTime time.Time
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults with env overrides", cfgPath, err)
		cfg = config.Default()
	}

	// Env vars override file config.
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		cfg.Memgraph.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		cfg.Memgraph.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		cfg.Memgraph.Password = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_EMBEDDING_MODEL"); v != "" {
		cfg.LLM.EmbeddingModel = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("DICTIONARY_DB_PATH"); v != "" {
		cfg.Dictionary.Path = v
	}
	if v := os.Getenv("LOG_FILE_PATH"); v != "" {
		cfg.Audit.LogPath = v
	}
	if v := os.Getenv("MAX_SESSIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Sessions.MaxSessions = n
		}
	}
	if v := os.Getenv("DEFAULT_SESSION_ID"); v != "" {
		cfg.Sessions.DefaultID = v
	}

	if cfg.Memgraph.URI == "" {
		cfg.Memgraph.URI = "bolt://localhost:7687"
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "ollama"
		cfg.LLM.Model = "gpt-oss:latest"
		cfg.LLM.BaseURL = "http://localhost:11434"
	}

	d, err := driver.NewMemgraphDriver(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, 0)
	if err != nil {
		log.Fatalf("Failed to connect to Memgraph: %v", err)
	}
	if err := d.BuildIndices(context.Background()); err != nil {
		log.Printf("Warning: failed to build indices: %v", err)
	}

	llmClient, embedderClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	termStore, err := terms.Open(cfg.Dictionary.Path)
	if err != nil {
		log.Fatalf("Failed to open dictionary: %v", err)
	}

	sink, err := audit.NewSink(cfg.Audit.LogPath)
	if err != nil {
		log.Fatalf("Failed to open audit log: %v", err)
	}

	mem := memory.New(d, embedderClient)

	factory := func(sessionID string) *core.Resolver {
		adapter := provider.NewAdapter(llmClient,
			time.Duration(cfg.Provider.TimeoutSeconds)*time.Second,
			cfg.Provider.MaxInputChars,
			cfg.Provider.Prompt)
		return core.NewResolver(sessionID, termStore, mem, adapter, sink,
			cfg.Memory.SimilarityThreshold, cfg.Memory.SearchLimit)
	}

	return &Server{
		Pool:      session.NewPool(cfg.Sessions.MaxSessions, cfg.Sessions.DefaultID, factory),
		Memory:    mem,
		Terms:     termStore,
		Audit:     sink,
		Cfg:       cfg,
		startTime: time.Now(),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/translate", s.Translate)
	r.POST("/translate/batch", s.TranslateBatch)
	r.GET("/sessions", s.ListSessions)
	r.DELETE("/sessions/:id", s.ClearSession)
	r.GET("/sessions/:id/context", s.SessionContext)
	r.POST("/terms", s.AddTerm)
	r.GET("/logs", s.ReadLogs)
	r.GET("/stats", s.Stats)
	r.GET("/health", s.Health)

	return r
}

type TranslateRequest struct {
	Text       string `json:"text" binding:"required"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	SessionID  string `json:"session_id"`
	UseMemory  *bool  `json:"use_memory"`
}

func (s *Server) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.SourceLang == "" {
		req.SourceLang = "en"
	}
	if req.TargetLang == "" {
		req.TargetLang = "zu"
	}
	useMemory := true
	if req.UseMemory != nil {
		useMemory = *req.UseMemory
	}

	resolver := s.Pool.GetOrCreate(req.SessionID)

	result, err := resolver.Resolve(c.Request.Context(), core.Request{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		UseCache:   useMemory,
	})

	var vErr *core.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    true,
			"message":  "Input validation failed",
			"errors":   vErr.Errors,
			"warnings": vErr.Warnings,
		})
		return
	}
	if err != nil {
		log.Printf("Failed to resolve translation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve translation"})
		return
	}

	c.JSON(http.StatusOK, result)
}

type BatchItem struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type BatchRequest struct {
	Items     []BatchItem `json:"items" binding:"required"`
	SessionID string      `json:"session_id"`
}

func (s *Server) TranslateBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	resolver := s.Pool.GetOrCreate(req.SessionID)

	results := make([]gin.H, 0, len(req.Items))
	for _, item := range req.Items {
		sourceLang := item.SourceLang
		if sourceLang == "" {
			sourceLang = "en"
		}
		targetLang := item.TargetLang
		if targetLang == "" {
			targetLang = "zu"
		}

		result, err := resolver.Resolve(c.Request.Context(), core.Request{
			Text:       item.Text,
			SourceLang: sourceLang,
			TargetLang: targetLang,
			UseCache:   true,
		})

		var vErr *core.ValidationError
		if errors.As(err, &vErr) {
			results = append(results, gin.H{"error": true, "errors": vErr.Errors})
			continue
		}
		if err != nil {
			results = append(results, gin.H{"error": true, "errors": []string{err.Error()}})
			continue
		}
		results = append(results, gin.H{"result": result})
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

func (s *Server) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sessions":        s.Pool.List(),
		"max_sessions":    s.Cfg.Sessions.MaxSessions,
		"default_session": s.Pool.DefaultID(),
	})
}

func (s *Server) ClearSession(c *gin.Context) {
	sessionID := c.Param("id")

	if sessionID == s.Pool.DefaultID() {
		c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "status": "retained"})
		return
	}

	if err := s.Memory.ClearSession(c.Request.Context(), sessionID); err != nil {
		log.Printf("Failed to clear session memory for %s: %v", sessionID, err)
	}
	removed := s.Pool.Clear(sessionID)

	status := "not_found"
	if removed {
		status = "cleared"
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "status": status})
}

func (s *Server) SessionContext(c *gin.Context) {
	sessionID := c.Param("id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	notes, err := s.Memory.SessionContext(c.Request.Context(), sessionID, limit)
	if err != nil {
		log.Printf("Failed to read session context: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read session context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "context": notes})
}

type AddTermRequest struct {
	English     string `json:"english" binding:"required"`
	Translation string `json:"translation" binding:"required"`
}

func (s *Server) AddTerm(c *gin.Context) {
	var req AddTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := s.Terms.AddTerm(c.Request.Context(), req.English, req.Translation); err != nil {
		log.Printf("Failed to add term: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add term"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "added", "english": req.English})
}

func (s *Server) ReadLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	sessionID := c.Query("session_id")

	records, err := s.Audit.Read(limit, sessionID)
	if err != nil {
		log.Printf("Failed to read logs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": records, "count": len(records)})
}

func (s *Server) Stats(c *gin.Context) {
	memStats, err := s.Memory.GetStats(c.Request.Context())
	if err != nil {
		log.Printf("Warning: failed to read memory stats: %v", err)
	}

	termCount, err := s.Terms.Count(c.Request.Context())
	if err != nil {
		log.Printf("Warning: failed to count terms: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"memory":         memStats,
		"dictionary":     gin.H{"total_terms": termCount},
		"sessions":       len(s.Pool.List()),
		"uptime_seconds": int(time.Since(s.startTime).Seconds()),
	})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

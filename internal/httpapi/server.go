// Package httpapi serves a read-only JSON scoreboard over HTTP.
package httpapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/tui-snake/internal/platform/picture"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100

	maxPreviewWidth = 2048
)

// ScoreSource is the read side of the score store.
type ScoreSource interface {
	TopScores(limit int) ([]storage.ScoreEntry, error)
	HighScore() (int, error)
	PlayerHighScore(player string) (int, error)
}

// ScoreJSON is the wire form of a score entry.
type ScoreJSON struct {
	Rank      int       `json:"rank"`
	Player    string    `json:"player"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// Server is the HTTP scoreboard.
type Server struct {
	addr   string
	scores ScoreSource
	logger *log.Logger
	router *gin.Engine
	http   *http.Server
}

// New builds a server listening on addr. Call Serve to start it.
func New(addr string, scores ScoreSource, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		addr:   addr,
		scores: scores,
		logger: logger,
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.logRequests)
	router.GET("/healthz", s.health)
	router.GET("/api/scores", s.topScores)
	router.GET("/api/scores/best", s.bestScore)
	router.GET("/api/preview.png", s.preview)
	s.router = router

	s.http = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve listens until ctx is cancelled, then shuts down.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("starting HTTP scoreboard", "address", s.addr)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("httpapi: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP scoreboard")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.logger.Debug("request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) topScores(c *gin.Context) {
	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxLimit)
	}

	entries, err := s.scores.TopScores(limit)
	if err != nil {
		s.logger.Error("could not load scores", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load scores"})
		return
	}

	out := make([]ScoreJSON, 0, len(entries))
	for i, e := range entries {
		out = append(out, ScoreJSON{
			Rank:      i + 1,
			Player:    e.Player,
			Score:     e.Score,
			CreatedAt: e.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) bestScore(c *gin.Context) {
	player := c.Query("player")

	var (
		best int
		err  error
	)
	if player == "" {
		best, err = s.scores.HighScore()
	} else {
		best, err = s.scores.PlayerHighScore(player)
	}
	if err != nil {
		s.logger.Error("could not load best score", "player", player, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load best score"})
		return
	}

	resp := gin.H{"score": best}
	if player != "" {
		resp["player"] = player
	}
	c.JSON(http.StatusOK, resp)
}

// preview renders a fresh board. The optional seed picks the food cell and
// width scales the image.
func (s *Server) preview(c *gin.Context) {
	seed := time.Now().UnixNano()
	if raw := c.Query("seed"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}
		seed = n
	}

	width := 0
	if raw := c.Query("width"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxPreviewWidth {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("width must be between 1 and %d", maxPreviewWidth)})
			return
		}
		width = n
	}

	engine := snake.New(rand.New(rand.NewSource(seed)))
	img := picture.Scale(picture.Render(engine, picture.DefaultCellSize, picture.DefaultPalette()), width)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		s.logger.Error("could not encode preview", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render preview"})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

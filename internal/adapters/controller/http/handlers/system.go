package handlers

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ironclub/gym-server/pkg/logger/types"
)

// healthTimeout bounds the whole probe so a hung database cannot stall
// the client's startup splash.
const healthTimeout = 2 * time.Second

type SystemHandler struct {
	logger    *types.Logger
	db        *gorm.DB
	redis     *redis.Client
	staticDir string
}

func NewSystemHandler(logger *types.Logger, db *gorm.DB, redis *redis.Client, staticDir string) *SystemHandler {
	return &SystemHandler{
		logger:    logger,
		db:        db,
		redis:     redis,
		staticDir: staticDir,
	}
}

// Health reports backend connectivity. It always answers 200: the probe
// is a hint for the client splash screen, not a gate, so a slow or down
// dependency degrades the answer instead of failing it.
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	status := "ok"

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		status = "degraded"
	}
	if h.redis.Ping(ctx).Err() != nil {
		status = "degraded"
	}

	if status != "ok" {
		h.logger.Warnf("health probe degraded")
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

type manifest struct {
	Version string   `json:"version"`
	Assets  []string `json:"assets"`
}

// Manifest lists the static assets clients should precache, with a
// version derived from the newest file so caches invalidate on deploy.
func (h *SystemHandler) Manifest(c *gin.Context) {
	var assets []string
	var newest time.Time

	err := filepath.WalkDir(h.staticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, relErr := filepath.Rel(h.staticDir, path)
		if relErr != nil {
			return relErr
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			return infoErr
		}
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}
		assets = append(assets, "/static/"+filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		h.logger.Errorf("failed to walk static dir: %v", err)
		// An unreadable asset dir yields an empty manifest, not an error;
		// the client just skips precaching.
		assets = nil
	}
	if assets == nil {
		assets = []string{}
	}

	c.JSON(http.StatusOK, manifest{
		Version: fmt.Sprintf("%d", newest.Unix()),
		Assets:  assets,
	})
}

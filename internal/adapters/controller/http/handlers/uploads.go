package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ironclub/gym-server/internal/adapters/controller/http/response"
	"github.com/ironclub/gym-server/pkg/logger/types"
)

var allowedUploadExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".webp": {},
	".gif":  {},
}

type UploadHandler struct {
	logger    *types.Logger
	staticDir string
}

func NewUploadHandler(logger *types.Logger, staticDir string) *UploadHandler {
	return &UploadHandler{
		logger:    logger,
		staticDir: staticDir,
	}
}

// Upload stores an image under the static tree and returns its public
// URL, used for product and event pictures.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file field is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedUploadExtensions[ext]; !ok {
		response.BadRequest(c, "unsupported file type "+ext)
		return
	}

	name := uuid.New().String() + ext
	dir := filepath.Join(h.staticDir, "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		h.logger.Errorf("failed to create upload dir: %v", err)
		response.FromError(c, err)
		return
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		h.logger.Errorf("failed to store upload %s: %v", name, err)
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": "/static/uploads/" + name})
}

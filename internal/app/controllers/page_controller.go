package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeforms/internal/middleware"
)

// PageController serves the static index document
type PageController struct {
	indexFile string
}

// NewPageController creates a PageController for the given file path
func NewPageController(indexFile string) *PageController {
	return &PageController{indexFile: indexFile}
}

// Index handles GET /. The file is read on every request so edits on disk
// show up without a restart.
func (c *PageController) Index(ctx *gin.Context) {
	content, err := os.ReadFile(c.indexFile)
	if err != nil {
		middleware.Logger(ctx).Error().Err(err).Str("path", c.indexFile).Msg("Failed to read index document")
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.Data(http.StatusOK, "text/html", content)
}

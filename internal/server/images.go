package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListImages reports the filenames in the upload directory. An empty or
// unreadable directory is a 200 with an explanatory message, not a failure.
func (s *Server) ListImages(c *gin.Context) {
	files, err := s.uploads.List()
	if err != nil {
		s.log.Warn("read upload dir", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"msg": "No images uploaded"})
		return
	}
	if len(files) == 0 {
		c.JSON(http.StatusOK, gin.H{"msg": "No images uploaded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}

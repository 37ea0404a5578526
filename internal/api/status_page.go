package api

import (
	"embed"
	"net/http"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

//go:embed dist/*
var embeddedUI embed.FS

// MountStatusPage serves the embedded status page at the root path.
// API and swagger routes take precedence.
func MountStatusPage(r *gin.Engine) {
	fs, err := static.EmbedFolder(embeddedUI, "dist")
	if err != nil {
		panic("failed to open embedded status page: " + err.Error())
	}
	r.Use(static.Serve("/", fs))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") || strings.HasPrefix(c.Request.URL.Path, "/swagger") {
			c.Status(http.StatusNotFound)
			return
		}
		c.FileFromFS("dist/index.html", http.FS(embeddedUI))
	})
}

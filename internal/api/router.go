package api

import (
	"net/http"
	"strings"

	"go-posting-cleaner/internal/pipeline"

	"github.com/gin-gonic/gin"
)

type cleanRequest struct {
	Text string `json:"text"`
}

// NewRouter exposes the cleaning pipeline over HTTP. Nothing is written to disk.
func NewRouter(d *pipeline.Driver) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Posting Cleaner API is running!",
			"status":  "healthy",
		})
	})

	r.POST("/postings/clean", func(c *gin.Context) {
		var req cleanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}

		c.JSON(http.StatusOK, d.Process(req.Text))
	})

	return r
}

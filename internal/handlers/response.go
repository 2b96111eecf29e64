package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pagination describes the page returned by a listing endpoint
type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

func newPagination(total int64, limit, offset, pageLen int) Pagination {
	return Pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+pageLen) < total,
	}
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondPage(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	})
}

func respondBadRequest(c *gin.Context, message string, errs []string) {
	body := gin.H{
		"success": false,
		"message": message,
	}
	if len(errs) > 0 {
		body["errors"] = errs
	}
	c.JSON(http.StatusBadRequest, body)
}

func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"message": message,
	})
}

func respondError(c *gin.Context, message string, err error) {
	log.Printf("[API] %s %s (request %s): %s: %v",
		c.Request.Method, c.Request.URL.Path, RequestID(c), message, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}

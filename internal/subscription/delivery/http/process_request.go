package http

import "github.com/gin-gonic/gin"

func (h *handler) processChangeReq(c *gin.Context) (changeReq, error) {
	var req changeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

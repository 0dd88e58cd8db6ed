package http

import "github.com/gin-gonic/gin"

func (h *handler) processModeReq(c *gin.Context) (modeReq, error) {
	var req modeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

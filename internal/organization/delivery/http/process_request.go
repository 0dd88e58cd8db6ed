package http

import "github.com/gin-gonic/gin"

func (h *handler) processNameReq(c *gin.Context) (nameReq, error) {
	var req nameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSwitchOrgReq(c *gin.Context) (switchOrgReq, error) {
	var req switchOrgReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSwitchTeamReq(c *gin.Context) (switchTeamReq, error) {
	var req switchTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) deleteDividend(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	dividendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid dividend id: %w", err), c, 400)
		return
	}

	if err := m.PortfolioService.DeleteDividend(userAccountID, dividendID); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, map[string]bool{
		"success": true,
	})
}

package swap

import "github.com/gin-gonic/gin"

type IHandler interface {
	Create(c *gin.Context)
	GetStatus(c *gin.Context)
	List(c *gin.Context)
	Advance(c *gin.Context)
}

package health

import "github.com/gin-gonic/gin"

type IHandler interface {
	Basic(c *gin.Context)
}

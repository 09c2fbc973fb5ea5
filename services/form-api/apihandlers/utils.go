package apihandlers

import (
	"github.com/gin-gonic/gin"

	userDB "github.com/Nithin0620/DynoForm/pkg/db/users"
	jwthandling "github.com/Nithin0620/DynoForm/pkg/jwt-handling"
)

func (h *HttpEndpoints) getUserFromToken(c *gin.Context) (userDB.User, error) {
	token := c.MustGet("validatedToken").(*jwthandling.UserClaims)
	return h.userDBConn.GetUserByID(token.Subject)
}

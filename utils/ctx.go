package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the user id the auth middlewares place on the
// context. Both middlewares store it as uint; zero means no
// authenticated user.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

package middleware

import (
	"net/http"
	"strconv"

	"gearshare/internal/handler/httperr"
	"gearshare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// SharerHeader carries the caller's user id; the gateway in front of the
// service is trusted to have authenticated it.
const SharerHeader = "X-Sharer-User-Id"

const userIDKey = "sharer_user_id"

// RequireUser rejects requests without a parseable sharer header and stores
// the id for GetUserID.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest,
				errs.Validation("missing "+SharerHeader+" header"), "Missing user header", nil)
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest,
				errs.Validation("invalid "+SharerHeader+" header"), "Invalid user header", nil)
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

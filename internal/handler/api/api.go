package api

import (
	"net/http"

	"gearshare/internal/handler/httperr"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// currentUser returns the authenticated caller's id, aborting with 400 when
// the identity middleware did not run or the header was absent.
func currentUser(c *gin.Context) (int64, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.Validation("missing "+middleware.SharerHeader+" header"), "Missing user header", nil)
		return 0, false
	}
	return id, true
}

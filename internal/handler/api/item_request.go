package api

import (
	"net/http"
	"strconv"

	reqdto "gearshare/internal/handler/dto/request"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/handler/httperr"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	defaultRequestPageFrom = 0
	defaultRequestPageSize = 10
)

type ItemRequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewItemRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *ItemRequestHandler {
	return &ItemRequestHandler{cmds: cmds, q: q}
}

func (h *ItemRequestHandler) Create(c *gin.Context) {
	requesterID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), requesterID, req.Description)
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), requesterID, id)
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

func (h *ItemRequestHandler) ListOwn(c *gin.Context) {
	requesterID, ok := currentUser(c)
	if !ok {
		return
	}
	views, err := h.q.ListOwn(c.Request.Context(), requesterID)
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestList(views))
}

func (h *ItemRequestHandler) ListAll(c *gin.Context) {
	viewerID, ok := currentUser(c)
	if !ok {
		return
	}
	from, ok := queryInt(c, "from", defaultRequestPageFrom)
	if !ok {
		return
	}
	size, ok := queryInt(c, "size", defaultRequestPageSize)
	if !ok {
		return
	}
	views, err := h.q.ListAll(c.Request.Context(), viewerID, from, size)
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestList(views))
}

func (h *ItemRequestHandler) Get(c *gin.Context) {
	viewerID, ok := currentUser(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), viewerID, requestID)
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

func queryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name+" parameter", nil)
		return 0, false
	}
	return v, true
}

package api

import (
	"net/http"

	reqdto "gearshare/internal/handler/dto/request"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/handler/httperr"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	cmds commands.ItemCommands
	q    queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, q: q}
}

func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), ownerID, req.ToInput())
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItemView(&view.ItemView))
}

func (h *ItemHandler) Update(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), actorID, itemID, req.ToInput()); err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actorID, itemID)
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(&view.ItemView))
}

// Get returns the item with its comments and the next/last booking refs.
func (h *ItemHandler) Get(c *gin.Context) {
	viewerID, ok := currentUser(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), viewerID, itemID)
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetailView(view))
}

func (h *ItemHandler) ListOwn(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetailList(views))
}

func (h *ItemHandler) Search(c *gin.Context) {
	viewerID, ok := currentUser(c)
	if !ok {
		return
	}
	views, err := h.q.Search(c.Request.Context(), viewerID, c.Query("text"))
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemList(views))
}

func (h *ItemHandler) AddComment(c *gin.Context) {
	authorID, ok := currentUser(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	commentID, err := h.cmds.AddComment(c.Request.Context(), authorID, itemID, req.Text)
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), authorID, itemID)
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	for i := range view.Comments {
		if view.Comments[i].ID == commentID {
			c.JSON(http.StatusOK, resdto.FromCommentView(&view.Comments[i]))
			return
		}
	}
	httperr.AbortFromError(c, errs.New("created comment missing from item view"))
}

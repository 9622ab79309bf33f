package api

import (
	"net/http"
	"strconv"

	reqdto "gearshare/internal/handler/dto/request"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/handler/httperr"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

func (h *BookingHandler) Create(c *gin.Context) {
	bookerID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), bookerID, req.ToInput())
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), bookerID, id)
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// UpdateStatus lets the item owner approve or reject a waiting booking via
// the approved query flag.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.Validation("approved query parameter must be true or false"), "Invalid approved flag", nil)
		return
	}
	if err := h.cmds.UpdateStatus(c.Request.Context(), actorID, bookingID, approved); err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actorID, bookingID)
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) Get(c *gin.Context) {
	viewerID, ok := currentUser(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), viewerID, bookingID)
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) ListForBooker(c *gin.Context) {
	bookerID, ok := currentUser(c)
	if !ok {
		return
	}
	state, err := queries.ParseState(c.Query("state"))
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	views, err := h.q.ListForBooker(c.Request.Context(), bookerID, state)
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(views))
}

func (h *BookingHandler) ListForOwner(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	state, err := queries.ParseState(c.Query("state"))
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	views, err := h.q.ListForOwner(c.Request.Context(), ownerID, state)
	if err != nil {
		httperr.AbortFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(views))
}

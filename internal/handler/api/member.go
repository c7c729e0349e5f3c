package api

import (
	"net/http"

	reqdto "sportsbook/internal/handler/dto/request"
	resdto "sportsbook/internal/handler/dto/response"
	"sportsbook/internal/handler/httperr"
	"sportsbook/internal/usecase/commands"
	"sportsbook/internal/usecase/input"
	"sportsbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	cmds commands.MemberCommands
	q    queries.MemberQueries
}

func NewMemberHandler(cmds commands.MemberCommands, q queries.MemberQueries) *MemberHandler {
	return &MemberHandler{cmds: cmds, q: q}
}

// @Summary List members
// @Tags members
// @Produce json
// @Success 200 {array} resdto.MemberResponse
// @Failure 500 {object} httperr.Response
// @Router /api/members [get]
func (h *MemberHandler) List(c *gin.Context) {
	views, err := h.q.ListMembers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, resdto.FromMemberViews(views))
}

// @Summary Add member
// @Tags members
// @Accept json
// @Produce json
// @Param request body reqdto.CreateMemberRequest true "New member"
// @Success 201 {object} resdto.OperationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/members [post]
func (h *MemberHandler) Create(c *gin.Context) {
	var req reqdto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	form := input.NewFormPrompter(req.ToForm())
	out := h.cmds.ExecuteRegistration(c.Request.Context(), input.NewMemberInputCollector(form))
	if abortOnFailure(c, out, form, http.StatusConflict) {
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOutcome(out))
}

// @Summary Update member email
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body reqdto.UpdateEmailRequest true "New email"
// @Success 200 {object} resdto.OperationResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/members/{id}/email [patch]
func (h *MemberHandler) UpdateEmail(c *gin.Context) {
	var req reqdto.UpdateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	form := input.NewFormPrompter(req.ToForm(c.Param("id")))
	out := h.cmds.ExecuteEmailChange(c.Request.Context(), input.NewMemberInputCollector(form))
	if abortOnFailure(c, out, form, http.StatusConflict) {
		return
	}
	c.JSON(http.StatusOK, resdto.FromOutcome(out))
}

// @Summary Update member password
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body reqdto.UpdatePasswordRequest true "New password"
// @Success 200 {object} resdto.OperationResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/members/{id}/password [patch]
func (h *MemberHandler) UpdatePassword(c *gin.Context) {
	var req reqdto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	form := input.NewFormPrompter(req.ToForm(c.Param("id")))
	out := h.cmds.ExecutePasswordChange(c.Request.Context(), input.NewMemberInputCollector(form))
	if abortOnFailure(c, out, form, http.StatusConflict) {
		return
	}
	c.JSON(http.StatusOK, resdto.FromOutcome(out))
}

// @Summary Delete member
// @Description Removes the member and their bookings. Requires confirm=DELETE.
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Param confirm query string true "Must be DELETE"
// @Success 200 {object} resdto.OperationResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/members/{id} [delete]
func (h *MemberHandler) Delete(c *gin.Context) {
	var q reqdto.DeleteMemberQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	form := input.NewFormPrompter(q.ToForm(c.Param("id")))
	out := h.cmds.ExecuteDeletion(c.Request.Context(), input.NewMemberInputCollector(form))
	if abortOnFailure(c, out, form, http.StatusConflict) {
		return
	}
	c.JSON(http.StatusOK, resdto.FromOutcome(out))
}

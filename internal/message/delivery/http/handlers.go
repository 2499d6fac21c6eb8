package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-assistant/pkg/log"
	"hr-assistant/pkg/response"
)

// Message godoc
// @Summary     Send a conversation turn
// @Description Routes the latest user turn to the matching HR agent and returns its answer, plus form widgets while a flow is collecting fields.
// @Tags        Message
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     false "User id, used when the body has no user_id"
// @Param       body      body   messageReq true  "Conversation contents"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/message [POST]
func (h *handler) Message(c *gin.Context) {
	ctx := c.Request.Context()

	req, details := h.processMessageReq(c)
	if len(details) > 0 {
		h.l.Warnf(ctx, "message.delivery.http.Message: rejected request: %d field errors", len(details))
		response.ValidationError(c, details)
		return
	}

	userID := h.resolveUserID(c, req.UserID)
	ctx = log.WithUserID(ctx, userID)

	output, err := h.uc.Process(ctx, req.toInput(userID))
	if err != nil {
		h.l.Errorf(ctx, "message.delivery.http.Message: uc.Process: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newMessageResp(output))
}

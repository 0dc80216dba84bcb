package controllers

import (
	"net/http"

	"dorm-management-api/services"

	"github.com/gin-gonic/gin"
)

type SendMessageRequest struct {
	To      string `json:"to" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type MarkReadRequest struct {
	Read *bool `json:"read"`
}

type MessageController struct {
	messages *services.MessageService
}

func NewMessageController(messages *services.MessageService) *MessageController {
	return &MessageController{messages: messages}
}

// GetMessages lists the caller's sent and received messages, newest first.
func (ctl *MessageController) GetMessages(c *gin.Context) {
	msgs, err := ctl.messages.ListForUser(c.Request.Context(), currentUsername(c))
	if err != nil {
		respondError(c, err)
		return
	}
	unread := 0
	for _, m := range msgs {
		if m.ToUser == currentUsername(c) && !m.IsRead {
			unread++
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": msgs, "count": len(msgs), "unread": unread})
}

func (ctl *MessageController) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msg, err := ctl.messages.Send(c.Request.Context(), currentUsername(c), req.To, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": msg})
}

// MarkRead sets the read flag; an empty body means read.
func (ctl *MessageController) MarkRead(c *gin.Context) {
	var req MarkReadRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	read := req.Read == nil || *req.Read

	msg, err := ctl.messages.MarkRead(c.Request.Context(), c.Param("id"), currentUsername(c), read)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": msg})
}

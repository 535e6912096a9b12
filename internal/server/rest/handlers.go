package rest

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/socialscribe/internal/common"
	"github.com/dmitrijs2005/socialscribe/internal/logging"
	"github.com/dmitrijs2005/socialscribe/internal/server/models"
	"github.com/gin-gonic/gin"
)

type handlers struct {
	posts  PostService
	logger logging.Logger
}

func (h *handlers) generate(c *gin.Context) {
	b := c.MustGet(briefKey).(models.Brief)

	post, err := h.posts.Generate(c.Request.Context(), b)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"post":      post,
		"modelUsed": post.ModelUsed,
	})
}

func (h *handlers) list(c *gin.Context) {
	var filter models.ListFilter

	if raw, ok := c.GetQuery("approved"); ok {
		approved, err := strconv.ParseBool(raw)
		if err != nil {
			h.fail(c, common.NewValidationError("approved must be true or false"))
			return
		}
		filter.Approved = &approved
	}

	posts, err := h.posts.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(posts),
		"posts":   posts,
	})
}

func (h *handlers) get(c *gin.Context) {
	post, err := h.posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}

func (h *handlers) update(c *gin.Context) {
	var patch models.PostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortBadRequest(c, msgInvalidRequest)
		return
	}

	post, err := h.posts.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post updated successfully",
		"post":    post,
	})
}

func (h *handlers) delete(c *gin.Context) {
	if err := h.posts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post deleted successfully"})
}

package classes

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store interface {
	All(ctx context.Context) ([]Class, error)
	ByInstructor(ctx context.Context, email string) ([]Class, error)
	Insert(ctx context.Context, cl Class) (*mongo.InsertOneResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
	SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*mongo.UpdateResult, error)
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) List(c *gin.Context) {
	result, err := h.store.All(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListByInstructor filters on the path email, not the caller's token
// identity, so any instructor can list any instructor's classes.
func (h *Handler) ListByInstructor(c *gin.Context) {
	result, err := h.store.ByInstructor(c.Request.Context(), c.Param("email"))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Create(c *gin.Context) {
	var class Class
	if err := c.ShouldBindJSON(&class); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	// New classes await admin review.
	if class.Status == "" {
		class.Status = StatusPending
	}

	result, err := h.store.Insert(c.Request.Context(), class)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Approve(c *gin.Context) {
	h.setStatus(c, StatusApproved)
}

func (h *Handler) Deny(c *gin.Context) {
	h.setStatus(c, StatusDenied)
}

func (h *Handler) setStatus(c *gin.Context, status string) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid id"})
		return
	}

	result, err := h.store.SetStatus(c.Request.Context(), id, status)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

func (h *Handler) Feedback(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid id"})
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	result, err := h.store.SetFeedback(c.Request.Context(), id, req.Feedback)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func internalError(c *gin.Context, err error) {
	log.Printf("classes: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "internal server error"})
}

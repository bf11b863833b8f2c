package users

import (
	"context"
	"log"
	"net/http"

	"github.com/Rashed1879/talk-trove-server/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store is the slice of the repository the handlers need; tests provide
// an in-memory fake.
type Store interface {
	All(ctx context.Context) ([]User, error)
	ByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, u User) (*mongo.InsertOneResult, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error)
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

// Register creates the user on first sign-in and is a no-op when the email
// is already known. The unique index on email backstops the check-then-insert
// race: a concurrent duplicate insert surfaces as a duplicate-key error and
// gets the same response as the pre-check hit.
func (h *Handler) Register(c *gin.Context) {
	var user User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	existing, err := h.store.ByEmail(c.Request.Context(), user.Email)
	if err != nil {
		internalError(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
		return
	}

	result, err := h.store.Insert(c.Request.Context(), user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CheckAdmin reports whether the email in the path belongs to an admin.
// Callers may only ask about their own identity; a mismatch answers false
// without touching the database.
func (h *Handler) CheckAdmin(c *gin.Context) {
	h.checkRole(c, RoleAdmin, "admin")
}

func (h *Handler) CheckInstructor(c *gin.Context) {
	h.checkRole(c, RoleInstructor, "instructor")
}

func (h *Handler) checkRole(c *gin.Context, role, field string) {
	email := c.Param("email")

	claims, ok := middleware.ClaimsFromContext(c)
	if !ok || claims.Email != email {
		c.JSON(http.StatusOK, gin.H{field: false})
		return
	}

	user, err := h.store.ByEmail(c.Request.Context(), email)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{field: user != nil && user.Role == role})
}

func (h *Handler) PromoteAdmin(c *gin.Context) {
	h.promote(c, RoleAdmin)
}

func (h *Handler) PromoteInstructor(c *gin.Context) {
	h.promote(c, RoleInstructor)
}

func (h *Handler) promote(c *gin.Context, role string) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid id"})
		return
	}

	result, err := h.store.SetRole(c.Request.Context(), id, role)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func internalError(c *gin.Context, err error) {
	log.Printf("users: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "internal server error"})
}

package classes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Rashed1879/talk-trove-server/internal/auth"
	"github.com/Rashed1879/talk-trove-server/internal/classes"
	"github.com/Rashed1879/talk-trove-server/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeStore struct {
	classes  []classes.Class
	inserted []classes.Class
	status   map[string]string // id hex -> status
	feedback map[string]string // id hex -> feedback
}

func (f *fakeStore) All(_ context.Context) ([]classes.Class, error) {
	return f.classes, nil
}

func (f *fakeStore) ByInstructor(_ context.Context, email string) ([]classes.Class, error) {
	result := []classes.Class{}
	for _, cl := range f.classes {
		if cl.InstructorEmail == email {
			result = append(result, cl)
		}
	}
	return result, nil
}

func (f *fakeStore) Insert(_ context.Context, cl classes.Class) (*mongo.InsertOneResult, error) {
	f.inserted = append(f.inserted, cl)
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (f *fakeStore) SetStatus(_ context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	if f.status == nil {
		f.status = map[string]string{}
	}
	f.status[id.Hex()] = status
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeStore) SetFeedback(_ context.Context, id primitive.ObjectID, feedback string) (*mongo.UpdateResult, error) {
	if f.feedback == nil {
		f.feedback = map[string]string{}
	}
	f.feedback[id.Hex()] = feedback
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeRoleStore struct {
	roles map[string]string
}

func (f *fakeRoleStore) RoleByEmail(_ context.Context, email string) (string, error) {
	return f.roles[email], nil
}

func setupRouter(store *fakeStore) (*gin.Engine, auth.Service) {
	gin.SetMode(gin.TestMode)
	jwtService := auth.NewJWTService("secret", time.Hour)
	roles := &fakeRoleStore{roles: map[string]string{
		"admin@talktrove.dev": "admin",
		"ines@talktrove.dev":  "instructor",
	}}
	authenticated := middleware.Authenticate(jwtService)
	adminOnly := middleware.RequireRole(roles, "admin")
	instructorOnly := middleware.RequireRole(roles, "instructor")
	h := classes.NewHandler(store)

	r := gin.New()
	r.GET("/classes", authenticated, adminOnly, h.List)
	r.GET("/classes/:email", authenticated, instructorOnly, h.ListByInstructor)
	r.POST("/classes", authenticated, instructorOnly, h.Create)
	r.PATCH("/classes/approve/:id", authenticated, adminOnly, h.Approve)
	r.PATCH("/classes/deny/:id", authenticated, adminOnly, h.Deny)
	r.PATCH("/classes/feedback/:id", authenticated, adminOnly, h.Feedback)
	return r, jwtService
}

func authed(req *http.Request, jwtService auth.Service, email string) *http.Request {
	token, _ := jwtService.GenerateToken(email)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestListByInstructor_FiltersByPathEmail(t *testing.T) {
	store := &fakeStore{classes: []classes.Class{
		{Name: "Spanish 101", InstructorEmail: "ines@talktrove.dev"},
		{Name: "French 201", InstructorEmail: "felix@talktrove.dev"},
	}}
	r, jwtService := setupRouter(store)

	// Any instructor token works; the filter is the path email
	req, _ := http.NewRequest("GET", "/classes/felix@talktrove.dev", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authed(req, jwtService, "ines@talktrove.dev"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "French 201")
	assert.NotContains(t, w.Body.String(), "Spanish 101")
}

func TestList_AdminOnly(t *testing.T) {
	store := &fakeStore{classes: []classes.Class{{Name: "Spanish 101"}}}
	r, jwtService := setupRouter(store)

	req1, _ := http.NewRequest("GET", "/classes", nil)
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, authed(req1, jwtService, "admin@talktrove.dev"))

	req2, _ := http.NewRequest("GET", "/classes", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, authed(req2, jwtService, "ines@talktrove.dev"))

	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, http.StatusForbidden, w2.Code, "Instructor role should not pass the admin guard")
}

func TestCreate_DefaultsToPending(t *testing.T) {
	store := &fakeStore{}
	r, jwtService := setupRouter(store)

	body := `{"name":"Spanish 101","instructorName":"Ines","instructorEmail":"ines@talktrove.dev","availableSeats":20,"price":49.5}`
	req, _ := http.NewRequest("POST", "/classes", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authed(req, jwtService, "ines@talktrove.dev"))

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.Len(t, store.inserted, 1) {
		assert.Equal(t, classes.StatusPending, store.inserted[0].Status)
	}
}

func TestApproveAndDeny(t *testing.T) {
	store := &fakeStore{}
	r, jwtService := setupRouter(store)
	approveID := primitive.NewObjectID()
	denyID := primitive.NewObjectID()

	req1, _ := http.NewRequest("PATCH", "/classes/approve/"+approveID.Hex(), nil)
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, authed(req1, jwtService, "admin@talktrove.dev"))

	req2, _ := http.NewRequest("PATCH", "/classes/deny/"+denyID.Hex(), nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, authed(req2, jwtService, "admin@talktrove.dev"))

	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, classes.StatusApproved, store.status[approveID.Hex()])
	assert.Equal(t, classes.StatusDenied, store.status[denyID.Hex()])
	assert.Contains(t, w1.Body.String(), `"MatchedCount":1`)
}

func TestFeedback(t *testing.T) {
	store := &fakeStore{}
	r, jwtService := setupRouter(store)
	id := primitive.NewObjectID()

	// Missing body
	req1, _ := http.NewRequest("PATCH", "/classes/feedback/"+id.Hex(), strings.NewReader(`{}`))
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, authed(req1, jwtService, "admin@talktrove.dev"))

	// With feedback
	req2, _ := http.NewRequest("PATCH", "/classes/feedback/"+id.Hex(), strings.NewReader(`{"feedback":"needs a syllabus"}`))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, authed(req2, jwtService, "admin@talktrove.dev"))

	assert.Equal(t, http.StatusBadRequest, w1.Code)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, "needs a syllabus", store.feedback[id.Hex()])
}

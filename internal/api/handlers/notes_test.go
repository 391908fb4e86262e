package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"notes-saas-backend/internal/api/handlers"
	"notes-saas-backend/internal/auth"
	"notes-saas-backend/internal/database/models"
	apperrors "notes-saas-backend/internal/errors"
	"notes-saas-backend/internal/mocks"
	"notes-saas-backend/internal/repository"
	"notes-saas-backend/internal/service"
	"notes-saas-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// NoteHandlerTestSuite tests the note HTTP endpoints
type NoteHandlerTestSuite struct {
	suite.Suite
	httpSuite       *testutils.HTTPTestSuite
	ctrl            *gomock.Controller
	mockNoteService *mocks.MockNoteServiceInterface

	user   *models.User
	tenant *models.Tenant
}

func (suite *NoteHandlerTestSuite) SetupTest() {
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockNoteService = mocks.NewMockNoteServiceInterface(suite.ctrl)

	suite.tenant = &models.Tenant{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Name:         "Acme Corp",
		Slug:         "acme",
		Subscription: models.SubscriptionFree,
		IsActive:     true,
	}
	suite.user = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "user@acme.test",
		Role:      models.RoleMember,
		TenantID:  suite.tenant.ID,
		Tenant:    suite.tenant,
		IsActive:  true,
	}

	handler := handlers.NewNoteHandler(suite.mockNoteService, validator.New())
	inject := func(c *gin.Context) {
		auth.SetCurrentUser(c, suite.user, suite.tenant)
	}

	api := suite.httpSuite.Router.Group("/api/notes", inject)
	api.POST("", handler.Create)
	api.GET("", handler.List)
	api.GET("/:id", handler.Get)
	api.PUT("/:id", handler.Update)
	api.DELETE("/:id", handler.Delete)
	api.PATCH("/:id/archive", handler.ToggleArchive)
}

func (suite *NoteHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NoteHandlerTestSuite) noteResponse(title string) *service.NoteResponse {
	return &service.NoteResponse{
		ID:        uuid.New(),
		Title:     title,
		Content:   "content",
		Tags:      []string{},
		Priority:  models.PriorityMedium,
		TenantID:  suite.tenant.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (suite *NoteHandlerTestSuite) TestCreate() {
	suite.mockNoteService.EXPECT().
		Create(suite.tenant, suite.user, gomock.Any()).
		Return(suite.noteResponse("Groceries"), nil).
		Times(1)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/notes", map[string]interface{}{
		"title":   "Groceries",
		"content": "milk, eggs",
	})

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &body)
	assert.Equal(suite.T(), true, body["success"])
	assert.Equal(suite.T(), "Note created successfully", body["message"])

	data := body["data"].(map[string]interface{})
	note := data["note"].(map[string]interface{})
	assert.Equal(suite.T(), "Groceries", note["title"])
	assert.Equal(suite.T(), "medium", note["priority"])
}

func (suite *NoteHandlerTestSuite) TestCreateValidationMessages() {
	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/notes", map[string]interface{}{
		"priority": "urgent",
	})

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &body)
	assert.Equal(suite.T(), "Validation Error", body["message"])
	assert.ElementsMatch(suite.T(), []interface{}{
		"Title is required",
		"Content is required",
		"Priority must be one of: low, medium, high",
	}, body["errors"])
}

func (suite *NoteHandlerTestSuite) TestCreateRejectsUnknownFields() {
	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/notes", map[string]interface{}{
		"title":    "Groceries",
		"content":  "milk, eggs",
		"tenantId": uuid.New().String(),
	})

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &body)
	assert.Equal(suite.T(), "Validation Error", body["message"])
	assert.Equal(suite.T(), []interface{}{"Unknown field: tenantId"}, body["errors"])
}

func (suite *NoteHandlerTestSuite) TestUpdateRejectsUnknownFields() {
	noteID := uuid.New()

	w := suite.httpSuite.MakeRequest(http.MethodPut, "/api/notes/"+noteID.String(), map[string]interface{}{
		"title": "renamed",
		"owner": "someone-else",
	})

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &body)
	assert.Equal(suite.T(), []interface{}{"Unknown field: owner"}, body["errors"])
}

func (suite *NoteHandlerTestSuite) TestCreateLimitReached() {
	suite.mockNoteService.EXPECT().
		Create(suite.tenant, suite.user, gomock.Any()).
		Return(nil, apperrors.ErrNoteLimitReached).
		Times(1)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/notes", map[string]interface{}{
		"title":   "Fourth",
		"content": "over quota",
	})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden,
		"Note limit reached. Upgrade to Pro for unlimited notes.")
}

func (suite *NoteHandlerTestSuite) TestListDefaults() {
	suite.mockNoteService.EXPECT().
		List(suite.tenant.ID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, query *repository.NoteQuery) ([]service.NoteResponse, *service.Pagination, error) {
			assert.Equal(suite.T(), 1, query.Page)
			assert.Equal(suite.T(), 10, query.Limit)
			assert.Equal(suite.T(), "createdAt", query.SortBy)
			assert.Equal(suite.T(), "desc", query.SortOrder)
			assert.False(suite.T(), query.IncludeArchived)
			return []service.NoteResponse{*suite.noteResponse("a")},
				&service.Pagination{Page: 1, Limit: 10, Total: 1, Pages: 1}, nil
		}).
		Times(1)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/notes", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	data := body["data"].(map[string]interface{})
	assert.Len(suite.T(), data["notes"], 1)

	pagination := data["pagination"].(map[string]interface{})
	assert.EqualValues(suite.T(), 1, pagination["page"])
	assert.EqualValues(suite.T(), 1, pagination["total"])
}

func (suite *NoteHandlerTestSuite) TestListParsesFilters() {
	suite.mockNoteService.EXPECT().
		List(suite.tenant.ID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, query *repository.NoteQuery) ([]service.NoteResponse, *service.Pagination, error) {
			assert.Equal(suite.T(), 2, query.Page)
			assert.Equal(suite.T(), 5, query.Limit)
			assert.Equal(suite.T(), "title", query.SortBy)
			assert.Equal(suite.T(), "asc", query.SortOrder)
			assert.True(suite.T(), query.IncludeArchived)
			assert.Equal(suite.T(), []string{"work", "urgent"}, query.Tags)
			assert.Equal(suite.T(), "high", query.Priority)
			assert.Equal(suite.T(), "report", query.Search)
			return nil, &service.Pagination{Page: 2, Limit: 5}, nil
		}).
		Times(1)

	w := suite.httpSuite.MakeRequest(http.MethodGet,
		"/api/notes?page=2&limit=5&sortBy=title&sortOrder=asc&includeArchived=true&tags=work,urgent&priority=high&search=report", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *NoteHandlerTestSuite) TestListRejectsBadParams() {
	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/notes?page=0&limit=500&sortBy=color", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &body)
	assert.Equal(suite.T(), "Validation Error", body["message"])
	assert.ElementsMatch(suite.T(), []interface{}{
		"Page must be a positive integer",
		"Limit must be between 1 and 100",
		"SortBy must be one of: createdAt, updatedAt, title, priority",
	}, body["errors"])
}

func (suite *NoteHandlerTestSuite) TestGet() {
	note := suite.noteResponse("found")

	suite.mockNoteService.EXPECT().
		Get(suite.tenant.ID, note.ID).
		Return(note, nil).
		Times(1)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/notes/"+note.ID.String(), nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	data := body["data"].(map[string]interface{})
	assert.Equal(suite.T(), "found", data["note"].(map[string]interface{})["title"])
}

func (suite *NoteHandlerTestSuite) TestGetInvalidID() {
	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/notes/not-a-uuid", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &body)
	assert.Equal(suite.T(), []interface{}{"A valid id is required"}, body["errors"])
}

func (suite *NoteHandlerTestSuite) TestGetNotFound() {
	noteID := uuid.New()

	suite.mockNoteService.EXPECT().
		Get(suite.tenant.ID, noteID).
		Return(nil, apperrors.ErrNoteNotFound).
		Times(1)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/notes/"+noteID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "Note not found")
}

func (suite *NoteHandlerTestSuite) TestUpdate() {
	note := suite.noteResponse("updated")

	suite.mockNoteService.EXPECT().
		Update(suite.tenant.ID, note.ID, gomock.Any()).
		Return(note, nil).
		Times(1)

	w := suite.httpSuite.MakeRequest(http.MethodPut, "/api/notes/"+note.ID.String(), map[string]interface{}{
		"title": "updated",
	})

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	assert.Equal(suite.T(), "Note updated successfully", body["message"])
}

func (suite *NoteHandlerTestSuite) TestDelete() {
	noteID := uuid.New()

	suite.mockNoteService.EXPECT().
		Delete(suite.tenant.ID, noteID).
		Return(nil).
		Times(1)

	w := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/notes/"+noteID.String(), nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	assert.Equal(suite.T(), "Note deleted successfully", body["message"])
}

func (suite *NoteHandlerTestSuite) TestToggleArchiveMessages() {
	archived := suite.noteResponse("toggled")
	archived.IsArchived = true

	suite.mockNoteService.EXPECT().
		ToggleArchive(suite.tenant.ID, archived.ID).
		Return(archived, nil).
		Times(1)

	w := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/notes/"+archived.ID.String()+"/archive", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	assert.Equal(suite.T(), "Note archived successfully", body["message"])

	unarchived := suite.noteResponse("toggled")
	unarchived.IsArchived = false

	suite.mockNoteService.EXPECT().
		ToggleArchive(suite.tenant.ID, unarchived.ID).
		Return(unarchived, nil).
		Times(1)

	w = suite.httpSuite.MakeRequest(http.MethodPatch, "/api/notes/"+unarchived.ID.String()+"/archive", nil)

	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	assert.Equal(suite.T(), "Note unarchived successfully", body["message"])
}

func TestNoteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NoteHandlerTestSuite))
}

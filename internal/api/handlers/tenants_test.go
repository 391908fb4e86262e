package handlers_test

import (
	"net/http"
	"testing"

	"notes-saas-backend/internal/api/handlers"
	"notes-saas-backend/internal/auth"
	"notes-saas-backend/internal/database/models"
	apperrors "notes-saas-backend/internal/errors"
	"notes-saas-backend/internal/mocks"
	"notes-saas-backend/internal/repository"
	"notes-saas-backend/internal/service"
	"notes-saas-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TenantHandlerTestSuite tests the tenant HTTP endpoints
type TenantHandlerTestSuite struct {
	suite.Suite
	httpSuite         *testutils.HTTPTestSuite
	ctrl              *gomock.Controller
	mockTenantService *mocks.MockTenantServiceInterface

	user   *models.User
	tenant *models.Tenant
}

func (suite *TenantHandlerTestSuite) SetupTest() {
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTenantService = mocks.NewMockTenantServiceInterface(suite.ctrl)

	suite.tenant = &models.Tenant{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Name:         "Acme Corp",
		Slug:         "acme",
		Subscription: models.SubscriptionFree,
		IsActive:     true,
	}
	suite.user = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "admin@acme.test",
		Role:      models.RoleAdmin,
		TenantID:  suite.tenant.ID,
		Tenant:    suite.tenant,
		IsActive:  true,
	}

	handler := handlers.NewTenantHandler(suite.mockTenantService)
	inject := func(c *gin.Context) {
		auth.SetCurrentUser(c, suite.user, suite.tenant)
	}

	api := suite.httpSuite.Router.Group("/api/tenants", inject)
	api.GET("/:slug", handler.GetInfo)
	api.POST("/:slug/upgrade", handler.Upgrade)
	api.GET("/:slug/stats", handler.Stats)
}

func (suite *TenantHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TenantHandlerTestSuite) TestGetInfo() {
	info := &service.TenantInfo{
		ID:            suite.tenant.ID,
		Name:          "Acme Corp",
		Slug:          "acme",
		Subscription:  models.SubscriptionFree,
		NoteCount:     2,
		NoteLimit:     3,
		CanCreateNote: true,
	}

	suite.mockTenantService.EXPECT().GetInfo("acme").Return(info, nil).Times(1)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/tenants/acme", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	assert.Equal(suite.T(), true, body["success"])

	tenant := body["data"].(map[string]interface{})["tenant"].(map[string]interface{})
	assert.Equal(suite.T(), "acme", tenant["slug"])
	assert.EqualValues(suite.T(), 2, tenant["noteCount"])
	assert.EqualValues(suite.T(), 3, tenant["noteLimit"])
	assert.Equal(suite.T(), true, tenant["canCreateNote"])
}

func (suite *TenantHandlerTestSuite) TestGetInfoNotFound() {
	suite.mockTenantService.EXPECT().
		GetInfo("ghost").
		Return(nil, apperrors.ErrTenantNotFound).
		Times(1)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/tenants/ghost", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "Tenant not found")
}

func (suite *TenantHandlerTestSuite) TestGetInfoBadSlug() {
	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/tenants/Bad_Slug", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &body)
	assert.Equal(suite.T(), []interface{}{"A valid tenant slug is required"}, body["errors"])
}

func (suite *TenantHandlerTestSuite) TestUpgrade() {
	info := &service.TenantInfo{
		ID:            suite.tenant.ID,
		Name:          "Acme Corp",
		Slug:          "acme",
		Subscription:  models.SubscriptionPro,
		NoteCount:     3,
		NoteLimit:     "unlimited",
		CanCreateNote: true,
	}

	suite.mockTenantService.EXPECT().Upgrade(suite.tenant, "acme").Return(info, nil).Times(1)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/tenants/acme/upgrade", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	assert.Equal(suite.T(), "Tenant upgraded to Pro successfully", body["message"])

	tenant := body["data"].(map[string]interface{})["tenant"].(map[string]interface{})
	assert.Equal(suite.T(), "pro", tenant["subscription"])
	assert.Equal(suite.T(), "unlimited", tenant["noteLimit"])
}

func (suite *TenantHandlerTestSuite) TestUpgradeAlreadyPro() {
	suite.mockTenantService.EXPECT().
		Upgrade(suite.tenant, "acme").
		Return(nil, apperrors.ErrTenantAlreadyPro).
		Times(1)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/tenants/acme/upgrade", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Tenant is already on Pro plan")
}

func (suite *TenantHandlerTestSuite) TestUpgradeCrossTenant() {
	suite.mockTenantService.EXPECT().
		Upgrade(suite.tenant, "globex").
		Return(nil, apperrors.ErrAccessDenied).
		Times(1)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/tenants/globex/upgrade", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "Access denied")
}

func (suite *TenantHandlerTestSuite) TestStats() {
	stats := &service.TenantStats{
		TotalNotes:    2,
		ArchivedNotes: 1,
		NotesByPriority: map[models.Priority]int64{
			models.PriorityLow:    0,
			models.PriorityMedium: 1,
			models.PriorityHigh:   1,
		},
		NotesByCategory: []repository.CategoryCount{{Category: "work", Count: 2}},
		Subscription:    models.SubscriptionFree,
		NoteLimit:       3,
		CanCreateNote:   true,
	}

	suite.mockTenantService.EXPECT().Stats(suite.tenant, "acme").Return(stats, nil).Times(1)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/tenants/acme/stats", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)

	payload := body["data"].(map[string]interface{})["stats"].(map[string]interface{})
	assert.EqualValues(suite.T(), 2, payload["totalNotes"])
	assert.EqualValues(suite.T(), 1, payload["archivedNotes"])

	byPriority := payload["notesByPriority"].(map[string]interface{})
	assert.EqualValues(suite.T(), 1, byPriority["high"])

	byCategory := payload["notesByCategory"].([]interface{})
	assert.Len(suite.T(), byCategory, 1)
}

func (suite *TenantHandlerTestSuite) TestStatsCrossTenant() {
	suite.mockTenantService.EXPECT().
		Stats(suite.tenant, "globex").
		Return(nil, apperrors.ErrAccessDenied).
		Times(1)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/tenants/globex/stats", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "Access denied")
}

func TestTenantHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}

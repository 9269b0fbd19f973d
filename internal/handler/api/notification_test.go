//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"order-ledger/internal/handler/api"
	resdto "order-ledger/internal/handler/dto/response"
	"order-ledger/internal/usecase/queries"
	"order-ledger/tests/common/httptest"
	queriesmock "order-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockNotificationQueries
	handler     *api.NotificationHandler
	userID      uuid.UUID
}

func (s *NotificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	s.handler = api.NewNotificationHandler(s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.GET("/notifications", authMiddleware, s.handler.ListMine)
	// Route without auth to exercise the handler's own identity check
	s.router.GET("/anonymous/notifications", s.handler.ListMine)
}

func (s *NotificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}

func (s *NotificationHandlerTestSuite) TestListMine() {
	createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	items := []*queries.NotificationView{
		{ID: uuid.New(), Title: "Order delivered", Message: "Your order ORD-7K3M9QZX has been delivered.", Link: "storefront://orders/1", CreatedAt: createdAt},
		{ID: uuid.New(), Title: "Order in transit", Message: "Your order ORD-7K3M9QZX is on its way.", CreatedAt: createdAt.Add(-time.Hour)},
	}

	s.Run("success: first page with default limit", func() {
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID, (*queries.Cursor)(nil), queries.DefaultListLimit).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications", nil, "bearer-token")

		var body resdto.NotificationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Notifications, 2)
		s.Equal(items[0].ID.String(), body.Notifications[0].ID)
		s.Equal("Order delivered", body.Notifications[0].Title)
		s.Equal("storefront://orders/1", body.Notifications[0].Link)
		s.Require().NotNil(body.NextCursor)
		s.Equal("next-page", *body.NextCursor)
	})

	s.Run("success: cursor and limit are forwarded", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID, &queries.Cursor{After: "abc"}, 5).
			Return(items[:1], nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?limit=5&after=abc", nil, "bearer-token")

		var body resdto.NotificationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Notifications, 1)
		s.Nil(body.NextCursor)
	})

	s.Run("success: oversized limit is clamped", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID, gomock.Nil(), queries.MaxListLimit).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?limit=100000", nil, "bearer-token")

		var body resdto.NotificationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotNil(body.Notifications)
		s.Empty(body.Notifications)
	})

	s.Run("error: 400 Bad Request on non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?limit=ten", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: 400 Bad Request on invalid cursor", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 401 Unauthorized without identity in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/anonymous/notifications", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).
			Return(nil, nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vinaytz/theSkFoodBackend/controllers"
	"github.com/vinaytz/theSkFoodBackend/entity"
	"github.com/vinaytz/theSkFoodBackend/middlewares"
	"github.com/vinaytz/theSkFoodBackend/repository"
	"github.com/vinaytz/theSkFoodBackend/services"
	"github.com/vinaytz/theSkFoodBackend/utils"
)

const testSecret = "test-secret-key"

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	orders *services.OrderService
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Menu{}, &entity.MenuHistory{},
		&entity.Order{},
	))

	logger := zap.NewNop()
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authSvc := services.NewAuthService(userRepo, testSecret, time.Hour)
	menuSvc := services.NewMenuService(db, menuRepo, logger)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, nil, nil, logger)

	authCtrl := controllers.NewAuthController(authSvc, 3600)
	userCtrl := controllers.NewUserPanelController(menuSvc, orderSvc)
	adminCtrl := controllers.NewAdminController(menuSvc, orderSvc, t.TempDir())

	auth := middlewares.AuthMiddleware(testSecret)
	adminOnly := middlewares.AuthMiddleware(testSecret, "admin")

	r := gin.New()
	ua := r.Group("/userAuth")
	{
		ua.POST("/signup", authCtrl.Signup)
		ua.POST("/login", authCtrl.Login)
		ua.GET("/profile", auth, authCtrl.Profile)
	}
	up := r.Group("/userPanel", auth)
	{
		up.GET("/seeLunchMenu", userCtrl.SeeLunchMenu)
		up.GET("/seeDinnerMenu", userCtrl.SeeDinnerMenu)
		up.POST("/checkout", userCtrl.Checkout)
		up.GET("/myAllOrders", userCtrl.MyAllOrders)
		up.GET("/myOrderwithId/:id", userCtrl.MyOrderWithID)
	}
	admin := r.Group("/admin", adminOnly)
	{
		admin.PUT("/createMeal", adminCtrl.CreateMeal)
		admin.GET("/menuHistoryLog", adminCtrl.MenuHistoryLog)
		admin.GET("/allOrders", adminCtrl.AllOrders)
		admin.PATCH("/orders/:id/dispatch", adminCtrl.Dispatch)
		admin.PATCH("/orders/:id/deliver", adminCtrl.Deliver)
	}

	return &testEnv{router: r, db: db, orders: orderSvc}
}

func doJSON(router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, userID uint, role string) string {
	t.Helper()
	tok, err := utils.GenerateToken(userID, role, testSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedUser(t *testing.T, db *gorm.DB, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		Name:     "Test User",
		Email:    role + "@example.com",
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

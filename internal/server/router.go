package server

import (
	"io/fs"
	"log/slog"
	"net/http"

	"shop-backoffice/internal/config"
	"shop-backoffice/internal/handlers"
	"shop-backoffice/internal/middleware"
	"shop-backoffice/internal/models"
	"shop-backoffice/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const (
	ServiceName = "shop-backoffice"

	sessionName   = "shop_session"
	sessionMaxAge = 7 * 24 * 60 * 60
	redisPoolSize = 10
)

func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		s, err := redis.NewStore(redisPoolSize, "tcp", cfg.RedisAddr, cfg.RedisPassword, []byte(cfg.SessionSecret))
		if err != nil {
			return nil, errors.Wrap(err, "connect redis session store")
		}
		store = s
	default:
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}

func NewRouter(cfg *config.Config, log *slog.Logger) (*gin.Engine, error) {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Tracing(ServiceName),
		middleware.RequestLogger(log),
	)

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, errors.Wrap(err, "static files")
	}
	r.StaticFS("/static", http.FS(static))

	store, err := newSessionStore(cfg)
	if err != nil {
		return nil, err
	}
	r.Use(sessions.Sessions(sessionName, store))

	r.Use(middleware.InjectUser())

	// ГЛАВНАЯ
	r.GET("/", handlers.HomePage)

	// AUTH
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)
	r.POST("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	adminOnly := middleware.RequireRole(models.RoleAdmin)
	staff := middleware.RequireRole(models.RoleAdmin, models.RoleManager)

	// КАБИНЕТЫ
	auth.GET("/dashboard/admin", adminOnly, handlers.AdminDashboard)
	auth.GET("/dashboard/manager", staff, handlers.ManagerDashboard)
	auth.GET("/dashboard/client",
		middleware.RequireRole(models.AllRoles...),
		handlers.ClientDashboard,
	)

	// ТОВАРЫ: только админ
	products := auth.Group("/products", adminOnly)
	products.GET("", handlers.ListProducts)
	products.GET("/new", handlers.ShowNewProduct)
	products.POST("/new", handlers.CreateProduct)
	products.GET("/:id/edit", handlers.ShowEditProduct)
	products.POST("/:id/edit", handlers.UpdateProduct)
	products.POST("/:id/delete", handlers.DeleteProduct)

	// СПРАВОЧНИКИ: только админ
	dicts := auth.Group("/dictionaries", adminOnly)
	dicts.GET("/:kind", handlers.ListDictionary)
	dicts.POST("/:kind", handlers.CreateDictionaryEntry)
	dicts.POST("/:kind/:id/delete", handlers.DeleteDictionaryEntry)

	// КЛИЕНТЫ: только админ
	clients := auth.Group("/clients", adminOnly)
	clients.GET("", handlers.ListClients)
	clients.POST("", handlers.CreateClient)
	clients.POST("/:id/delete", handlers.DeleteClient)

	// ЗАКАЗЫ: админ и менеджер, удаление только админ
	orders := auth.Group("/orders", staff)
	orders.GET("", handlers.ListOrders)
	orders.GET("/new", handlers.ShowNewOrder)
	orders.POST("/new", handlers.CreateOrder)
	orders.GET("/:id", handlers.ShowOrder)
	orders.POST("/:id/status", handlers.UpdateOrderStatus)
	orders.POST("/:id/delete", adminOnly, handlers.DeleteOrder)

	// АУДИТ
	auth.GET("/audit", adminOnly, handlers.ListAuditLogs)

	// HEALTHCHECK
	r.GET("/health", handlers.Health)

	return r, nil
}

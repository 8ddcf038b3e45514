package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"salesledger/internal/auth"
	"salesledger/internal/http/handlers"
	"salesledger/internal/ledger"
)

func NewRouter(db *gorm.DB, jwtSecret string) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	r.POST("/api/v1/auth/login", handlers.LoginHandler(db, jwtSecret))

	authMW := auth.JWT(db, jwtSecret)
	dispatcher := ledger.NewDispatcher(db)

	api := r.Group("/api/v1", authMW)
	{
		api.GET("/me", handlers.MeHandler(db))

		// Access-control event source: the platform posts one event per
		// grant/revoke of read access on a business record.
		api.POST("/events/share", handlers.ShareEvent(dispatcher))

		// Ledger reads
		api.GET("/team-members", handlers.ListTeamMembers(db))

		// Audit Trail
		api.GET("/audit", handlers.ListAudit(db))
	}

	return r
}

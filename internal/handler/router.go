package handler

import (
	"net/http"

	"gamewish/internal/middleware"
	"gamewish/internal/session"
	"gamewish/web"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every route to its handler and the session
// middlewares guarding it.
func NewRouter(store session.Store, authH *AuthHandler, gameH *GameHandler, profileH *ProfileHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(web.Templates())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Open to anonymous visitors
	r.GET("/main/", middleware.IdentifySession(store), authH.Main)
	r.GET("/login/", authH.ShowLogin)
	r.POST("/login/", authH.Login)
	r.GET("/register/", authH.ShowRegister)
	r.POST("/register/", authH.Register)

	// Session required
	protected := r.Group("", middleware.RequireSession(store))
	{
		protected.GET("/logout/", authH.Logout)
		protected.GET("/game_list/", gameH.List)
		protected.POST("/game_list/", middleware.RequireAdmin(), gameH.DeleteFromList)
		protected.GET("/game/:id/", gameH.Details)
		protected.POST("/game/:id/", gameH.Act)
		protected.GET("/user_profile/:id/", profileH.Profile)
		protected.POST("/user_profile/:id/", profileH.DeletePriority)
		protected.GET("/user_list/", profileH.UserList)
		protected.GET("/change_password/:id/", authH.ShowChangePassword)
		protected.POST("/change_password/:id/", authH.ChangePassword)

		// Admin only
		admin := protected.Group("", middleware.RequireAdmin())
		{
			admin.GET("/add_game/", gameH.ShowAddGame)
			admin.POST("/add_game/", gameH.AddGame)
			admin.GET("/add_category/", gameH.ShowAddCategory)
			admin.POST("/add_category/", gameH.AddCategory)
		}
	}

	return r
}

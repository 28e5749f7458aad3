package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/microtweet/microtweet/internal/config"
	"github.com/microtweet/microtweet/internal/middleware"
)

// NewRouter assembles the full HTTP surface. Profile-by-id is public;
// everything else sits behind the api-key lookup.
func NewRouter(cfg *config.ServerConfig, auth gin.HandlerFunc, userHandler *UserHandler, tweetHandler *TweetHandler, mediaHandler *MediaHandler) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	api := router.Group("/api")
	api.GET("/users/:id", userHandler.GetUser)

	protected := api.Group("")
	protected.Use(auth)
	{
		protected.GET("/users/me", userHandler.GetMe)
		protected.POST("/users/:id/follow", userHandler.Follow)
		protected.DELETE("/users/:id/follow", userHandler.Unfollow)

		protected.POST("/tweets", tweetHandler.CreateTweet)
		protected.GET("/tweets", tweetHandler.GetTimeline)
		protected.DELETE("/tweets/:id", tweetHandler.DeleteTweet)
		protected.POST("/tweets/:id/likes", tweetHandler.Like)
		protected.DELETE("/tweets/:id/likes", tweetHandler.Unlike)

		protected.POST("/medias", mediaHandler.Upload)
	}

	return router
}

package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/microtweet/microtweet/internal/middleware"
	"github.com/microtweet/microtweet/internal/services"
)

type TweetHandler struct {
	tweetService *services.TweetService
	likeService  *services.LikeService
}

func NewTweetHandler(tweetService *services.TweetService, likeService *services.LikeService) *TweetHandler {
	return &TweetHandler{
		tweetService: tweetService,
		likeService:  likeService,
	}
}

type createTweetRequest struct {
	TweetData     string   `json:"tweet_data" binding:"required"`
	TweetMediaIDs []uint64 `json:"tweet_media_ids"`
}

func (h *TweetHandler) CreateTweet(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req createTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, fmt.Errorf("%s: %w", err, services.ErrBadRequest))
		return
	}

	tweetID, err := h.tweetService.Create(c.Request.Context(), user, req.TweetData, req.TweetMediaIDs)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, gin.H{"tweet_id": tweetID})
}

func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	user := middleware.CurrentUser(c)

	tweetID, err := parseID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.tweetService.Delete(c.Request.Context(), user, tweetID); err != nil {
		fail(c, err)
		return
	}

	ok(c, nil)
}

func (h *TweetHandler) GetTimeline(c *gin.Context) {
	user := middleware.CurrentUser(c)

	tweets, err := h.tweetService.Timeline(c.Request.Context(), user)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, gin.H{"tweets": tweets})
}

func (h *TweetHandler) Like(c *gin.Context) {
	user := middleware.CurrentUser(c)

	tweetID, err := parseID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.likeService.Like(c.Request.Context(), user, tweetID); err != nil {
		fail(c, err)
		return
	}

	ok(c, nil)
}

func (h *TweetHandler) Unlike(c *gin.Context) {
	user := middleware.CurrentUser(c)

	tweetID, err := parseID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.likeService.Unlike(c.Request.Context(), user, tweetID); err != nil {
		fail(c, err)
		return
	}

	ok(c, nil)
}

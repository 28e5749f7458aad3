package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microtweet/microtweet/internal/config"
	"github.com/microtweet/microtweet/internal/middleware"
	"github.com/microtweet/microtweet/internal/repository"
	"github.com/microtweet/microtweet/internal/services"
	"github.com/microtweet/microtweet/pkg/logger"
	"github.com/microtweet/microtweet/pkg/storage"
)

// newTestRouter wires the full application against an in-memory store
// carrying the seed rows: users 0..2 (api keys "None", "test", "test2")
// and the follow edge 1 -> 2.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.NewDatabase(&config.DatabaseConfig{
		Driver:       "sqlite",
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := db.Seed(context.Background()); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}

	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create blob store: %v", err)
	}

	log := logger.NewLogger("fatal")

	userRepo := repository.NewUserRepository(db.DB)
	followRepo := repository.NewFollowRepository(db.DB)
	tweetRepo := repository.NewTweetRepository(db.DB)
	likeRepo := repository.NewLikeRepository(db.DB)
	pictureRepo := repository.NewPictureRepository(db.DB)

	userService := services.NewUserService(db, userRepo, followRepo, log)
	tweetService := services.NewTweetService(db, tweetRepo, log)
	likeService := services.NewLikeService(db, likeRepo, log)
	mediaService := services.NewMediaService(pictureRepo, store, log)

	auth := middleware.NewAPIKeyAuth(userService)
	return NewRouter(
		&config.ServerConfig{RequestTimeout: 5 * time.Second},
		auth,
		NewUserHandler(userService),
		NewTweetHandler(tweetService, likeService),
		NewMediaHandler(mediaService),
	)
}

func doRequest(t *testing.T, router *gin.Engine, method, path, apiKey string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set(middleware.APIKeyHeader, apiKey)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("Response is not JSON: %v (body: %s)", err, w.Body.String())
	}
	return w, decoded
}

func uploadMedia(t *testing.T, router *gin.Engine, apiKey, filename string, contents []byte) uint64 {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("Failed to create multipart file: %v", err)
	}
	if _, err := fw.Write(contents); err != nil {
		t.Fatalf("Failed to write multipart file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/medias", buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(middleware.APIKeyHeader, apiKey)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("Upload response is not JSON: %s", w.Body.String())
	}
	if decoded["result"] != true {
		t.Fatalf("Upload failed: %s", w.Body.String())
	}
	return uint64(decoded["media_id"].(float64))
}

func assertFailure(t *testing.T, w *httptest.ResponseRecorder, body map[string]interface{}, wantStatus int, wantType string) {
	t.Helper()

	if w.Code != wantStatus {
		t.Errorf("status = %d, want %d (body: %s)", w.Code, wantStatus, w.Body.String())
	}
	if body["result"] != false {
		t.Errorf("result = %v, want false", body["result"])
	}
	if body["error_type"] != wantType {
		t.Errorf("error_type = %v, want %q", body["error_type"], wantType)
	}
	if msg, _ := body["error_message"].(string); msg == "" {
		t.Error("error_message is empty")
	}
}

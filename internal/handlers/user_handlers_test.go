package handlers

import (
	"net/http"
	"testing"
)

func TestGetUnknownUserReturns404(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/users/123", "", nil)
	assertFailure(t, w, body, http.StatusNotFound, "record not found")
}

func TestGetSeedUserByID(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/users/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	if body["result"] != true {
		t.Fatalf("result = %v, want true", body["result"])
	}

	user := body["user"].(map[string]interface{})
	if user["name"] != "Test User" {
		t.Errorf("user.name = %v, want Test User", user["name"])
	}

	following := user["following"].([]interface{})
	if len(following) != 1 {
		t.Fatalf("following = %v, want one entry", following)
	}
	followed := following[0].(map[string]interface{})
	if followed["id"].(float64) != 2 || followed["name"] != "Test User2" {
		t.Errorf("following[0] = %v, want {2 Test User2}", followed)
	}
}

func TestGetMe(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/users/me", "test", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	user := body["user"].(map[string]interface{})
	if user["id"].(float64) != 1 || user["name"] != "Test User" {
		t.Errorf("user = %v, want seed user 1", user)
	}
}

func TestGetMeUnknownKey(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/users/me", "coneofsilence", nil)
	assertFailure(t, w, body, http.StatusNotFound, "record not found")
}

func TestFollowLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// User 2 does not follow anyone yet.
	w, body := doRequest(t, router, http.MethodPost, "/api/users/1/follow", "test2", nil)
	if w.Code != http.StatusOK || body["result"] != true {
		t.Fatalf("follow failed: %d %s", w.Code, w.Body.String())
	}

	// The duplicate pair violates the unique key, and the endpoint does
	// not paper over it.
	w, body = doRequest(t, router, http.MethodPost, "/api/users/1/follow", "test2", nil)
	assertFailure(t, w, body, http.StatusOK, "constraint violation")

	w, body = doRequest(t, router, http.MethodDelete, "/api/users/1/follow", "test2", nil)
	if w.Code != http.StatusOK || body["result"] != true {
		t.Fatalf("unfollow failed: %d %s", w.Code, w.Body.String())
	}

	w, body = doRequest(t, router, http.MethodDelete, "/api/users/1/follow", "test2", nil)
	assertFailure(t, w, body, http.StatusNotFound, "record not found")
}

func TestFollowUnknownTarget(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodPost, "/api/users/999/follow", "test", nil)
	assertFailure(t, w, body, http.StatusNotFound, "record not found")
}

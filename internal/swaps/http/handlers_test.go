package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap-platform/skillswap/internal/auth"
	"github.com/skillswap-platform/skillswap/internal/swaps/domain"
	"github.com/skillswap-platform/skillswap/internal/swaps/service"
)

type memSwapStore struct {
	swaps  map[string]*domain.Swap
	nextID int
}

func (s *memSwapStore) Create(_ context.Context, sw *domain.Swap) (*domain.Swap, error) {
	s.nextID++
	copied := *sw
	copied.ID = fmt.Sprintf("swap-%d", s.nextID)
	copied.Status = domain.StatusPending
	s.swaps[copied.ID] = &copied
	return &copied, nil
}

func (s *memSwapStore) ListByParticipant(_ context.Context, userID string) ([]domain.Swap, error) {
	out := []domain.Swap{}
	for _, sw := range s.swaps {
		if sw.RequesterID == userID || sw.ReceiverID == userID {
			out = append(out, *sw)
		}
	}
	return out, nil
}

func (s *memSwapStore) Get(_ context.Context, id string) (*domain.Swap, error) {
	sw, ok := s.swaps[id]
	if !ok {
		return nil, domain.ErrSwapNotFound
	}
	return sw, nil
}

func (s *memSwapStore) Accept(_ context.Context, callerID, swapID string) (*domain.Swap, error) {
	return s.transition(callerID, swapID, true, domain.StatusAccepted, "")
}

func (s *memSwapStore) Reject(_ context.Context, callerID, swapID, reason string) (*domain.Swap, error) {
	return s.transition(callerID, swapID, true, domain.StatusRejected, reason)
}

func (s *memSwapStore) Complete(_ context.Context, callerID, swapID string, now time.Time) (*domain.Swap, error) {
	sw, ok := s.swaps[swapID]
	if !ok {
		return nil, domain.ErrSwapNotFound
	}
	if callerID != sw.RequesterID && callerID != sw.ReceiverID {
		return nil, domain.ErrNotParticipant
	}
	if sw.Status != domain.StatusAccepted {
		return nil, domain.ErrInvalidTransition
	}
	sw.Status = domain.StatusCompleted
	sw.ActualTime = &now
	return sw, nil
}

func (s *memSwapStore) transition(callerID, swapID string, receiverOnly bool, to, reason string) (*domain.Swap, error) {
	sw, ok := s.swaps[swapID]
	if !ok {
		return nil, domain.ErrSwapNotFound
	}
	if receiverOnly && callerID != sw.ReceiverID {
		return nil, domain.ErrNotReceiver
	}
	if sw.Status != domain.StatusPending {
		return nil, domain.ErrInvalidTransition
	}
	sw.Status = to
	sw.RejectionReason = reason
	return sw, nil
}

type memRatingStore struct {
	created []*domain.Rating
}

func (s *memRatingStore) Create(_ context.Context, r *domain.Rating) (*domain.Rating, error) {
	copied := *r
	copied.ID = fmt.Sprintf("rating-%d", len(s.created)+1)
	s.created = append(s.created, &copied)
	return &copied, nil
}

// asUser fakes what RequireAuth normally sets.
func asUser(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.CtxUserID, id)
		c.Next()
	}
}

func newSwapRouter(userID string) (*gin.Engine, *memSwapStore) {
	gin.SetMode(gin.TestMode)

	store := &memSwapStore{swaps: map[string]*domain.Swap{}}
	svc := service.NewSwapService(store, &memRatingStore{})

	r := gin.New()
	api := r.Group("/api")
	api.Use(asUser(userID))
	NewHandler(svc).Register(api)
	return r, store
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAndListSwaps(t *testing.T) {
	r, _ := newSwapRouter("alice")

	w := do(r, http.MethodPost, "/api/swaps/",
		`{"requester_skill_id":"s1","receiver_id":"bob","receiver_skill_id":"s2"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.Swap
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "alice", created.RequesterID)
	assert.Equal(t, domain.StatusPending, created.Status)

	w = do(r, http.MethodGet, "/api/swaps/", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed []domain.Swap
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
}

func TestCreateSwapMissingFields(t *testing.T) {
	r, _ := newSwapRouter("alice")

	w := do(r, http.MethodPost, "/api/swaps/", `{"receiver_id":"bob"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAcceptByRequesterForbidden(t *testing.T) {
	r, store := newSwapRouter("alice")

	store.swaps["swap-1"] = &domain.Swap{
		ID: "swap-1", RequesterID: "alice", ReceiverID: "bob", Status: domain.StatusPending,
	}

	w := do(r, http.MethodPut, "/api/swaps/swap-1/accept/", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReceiverLifecycle(t *testing.T) {
	r, store := newSwapRouter("bob")

	store.swaps["swap-1"] = &domain.Swap{
		ID: "swap-1", RequesterID: "alice", ReceiverID: "bob", Status: domain.StatusPending,
	}

	w := do(r, http.MethodPut, "/api/swaps/swap-1/accept/", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPut, "/api/swaps/swap-1/complete/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var done domain.Swap
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &done))
	assert.Equal(t, domain.StatusCompleted, done.Status)
	assert.NotNil(t, done.ActualTime)

	// Completed swaps cannot be accepted again.
	w = do(r, http.MethodPut, "/api/swaps/swap-1/accept/", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRejectWithReason(t *testing.T) {
	r, store := newSwapRouter("bob")

	store.swaps["swap-1"] = &domain.Swap{
		ID: "swap-1", RequesterID: "alice", ReceiverID: "bob", Status: domain.StatusPending,
	}

	w := do(r, http.MethodPut, "/api/swaps/swap-1/reject/", `{"reason":"schedule conflict"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "schedule conflict")
}

func TestActOnUnknownSwap(t *testing.T) {
	r, _ := newSwapRouter("bob")

	w := do(r, http.MethodPut, "/api/swaps/missing/accept/", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateCompletedSwapOverHTTP(t *testing.T) {
	r, store := newSwapRouter("alice")

	store.swaps["swap-1"] = &domain.Swap{
		ID: "swap-1", RequesterID: "alice", ReceiverID: "bob", Status: domain.StatusCompleted,
	}

	w := do(r, http.MethodPost, "/api/ratings/",
		`{"swap_id":"swap-1","rated_id":"bob","rating":5,"comment":"great"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var rating domain.Rating
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rating))
	assert.Equal(t, "alice", rating.RaterID)
}

func TestRatePendingSwapOverHTTP(t *testing.T) {
	r, store := newSwapRouter("alice")

	store.swaps["swap-1"] = &domain.Swap{
		ID: "swap-1", RequesterID: "alice", ReceiverID: "bob", Status: domain.StatusPending,
	}

	w := do(r, http.MethodPost, "/api/ratings/",
		`{"swap_id":"swap-1","rated_id":"bob","rating":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

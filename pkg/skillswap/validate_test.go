package skillswap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap-platform/skillswap/pkg/session"
)

// countingServer fails the test if any request reaches it.
func countingServer(t *testing.T) (*Client, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{}"))
	}))
	t.Cleanup(server.Close)
	return New(server.URL, session.NewMemoryStorage()), &hits
}

func TestCreateSkill_ShortDescriptionNeverReachesNetwork(t *testing.T) {
	client, hits := countingServer(t)

	_, err := client.CreateSkill(context.Background(), CreateSkillRequest{
		Name:        "Guitar",
		Description: "nine char", // length 9, minimum is 10
		Category:    "Music",
		Level:       "Beginner",
		Type:        SkillOffer,
	})

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, int64(0), hits.Load())
}

func TestCreateSkill_TenCharDescriptionPasses(t *testing.T) {
	client, hits := countingServer(t)

	_, err := client.CreateSkill(context.Background(), CreateSkillRequest{
		Name:        "Guitar",
		Description: "ten chars!",
		Category:    "Music",
		Level:       "Beginner",
		Type:        SkillOffer,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load())
}

func TestCreateSkill_InvalidType(t *testing.T) {
	client, hits := countingServer(t)

	_, err := client.CreateSkill(context.Background(), CreateSkillRequest{
		Name:        "Guitar",
		Description: "long enough description",
		Category:    "Music",
		Level:       "Beginner",
		Type:        "barter",
	})

	assert.True(t, IsValidation(err))
	assert.Equal(t, int64(0), hits.Load())
}

func TestTimeSlotOrdering(t *testing.T) {
	tests := []struct {
		name    string
		slot    TimeSlot
		wantErr bool
	}{
		{name: "start before end", slot: TimeSlot{Day: "Monday", Start: "09:00", End: "11:00"}},
		{name: "start equals end", slot: TimeSlot{Day: "Monday", Start: "09:00", End: "09:00"}, wantErr: true},
		{name: "start after end", slot: TimeSlot{Day: "Monday", Start: "18:00", End: "08:00"}, wantErr: true},
		{name: "bad day", slot: TimeSlot{Day: "Funday", Start: "09:00", End: "11:00"}, wantErr: true},
		{name: "bad clock value", slot: TimeSlot{Day: "Monday", Start: "25:00", End: "26:00"}, wantErr: true},
		{name: "not zero padded", slot: TimeSlot{Day: "Monday", Start: "9:00", End: "11:00"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkTimeSlots("availability", []TimeSlot{tt.slot})
			if tt.wantErr {
				assert.True(t, IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignup_RejectsMisorderedAvailability(t *testing.T) {
	client, hits := countingServer(t)

	err := client.Signup(context.Background(), SignupRequest{
		Email:    "user@example.com",
		Password: "longenough",
		Name:     "User",
		Availability: []TimeSlot{
			{Day: "Saturday", Start: "14:00", End: "10:00"},
		},
	})

	assert.True(t, IsValidation(err))
	assert.Equal(t, int64(0), hits.Load())
}

func TestCreateSwap_RejectsMisorderedProposedSlots(t *testing.T) {
	client, hits := countingServer(t)

	_, err := client.CreateSwap(context.Background(), CreateSwapRequest{
		RequesterSkillID: "sk1",
		ReceiverID:       "u2",
		ReceiverSkillID:  "sk2",
		ProposedTimeSlots: []TimeSlot{
			{Day: "Sunday", Start: "12:00", End: "12:00"},
		},
	})

	assert.True(t, IsValidation(err))
	assert.Equal(t, int64(0), hits.Load())
}

func TestVerifyEmail_OTPShape(t *testing.T) {
	client, hits := countingServer(t)

	assert.True(t, IsValidation(client.VerifyEmail(context.Background(), "user@example.com", "12345")))
	assert.True(t, IsValidation(client.VerifyEmail(context.Background(), "user@example.com", "abcdef")))
	assert.Equal(t, int64(0), hits.Load())

	require.NoError(t, client.VerifyEmail(context.Background(), "user@example.com", "123456"))
	assert.Equal(t, int64(1), hits.Load())
}

func TestCreateRating_Bounds(t *testing.T) {
	client, hits := countingServer(t)

	base := CreateRatingRequest{SwapID: "s1", RaterID: "u1", RatedID: "u2", Comment: "great"}

	for _, bad := range []int{-1, 0, 6} {
		req := base
		req.Rating = bad
		_, err := client.CreateRating(context.Background(), req)
		assert.True(t, IsValidation(err), "rating %d should be rejected", bad)
	}
	assert.Equal(t, int64(0), hits.Load())

	req := base
	req.Rating = 5
	_, err := client.CreateRating(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load())
}

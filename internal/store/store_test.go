package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Migrate())
	require.NoError(t, db.Migrate())
}

func TestUserRoundTrip(t *testing.T) {
	db := openTestDB(t)

	created, err := db.CreateUser("ada@example.com", "hash", "free", 0)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	byEmail, err := db.GetUserByEmail("ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)
	assert.Equal(t, "free", byEmail.Plan)

	byID, err := db.GetUser(created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "ada@example.com", byID.Email)

	missing, err := db.GetUserByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDuplicateEmailRejected(t *testing.T) {
	db := openTestDB(t)

	_, err := db.CreateUser("ada@example.com", "h1", "free", 0)
	require.NoError(t, err)

	_, err = db.CreateUser("ada@example.com", "h2", "free", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE")
}

func TestSpendCredit(t *testing.T) {
	db := openTestDB(t)

	u, err := db.CreateUser("pack@example.com", "h", "pack", 2)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		ok, err := db.SpendCredit(u.ID)
		require.NoError(t, err)
		assert.True(t, ok, "spend %d", i)
	}

	// Balance is exhausted; the guarded update must not go negative.
	ok, err := db.SpendCredit(u.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	after, err := db.GetUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, after.Credits)
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)

	u, err := db.CreateUser("ada@example.com", "h", "free", 0)
	require.NoError(t, err)

	expires := time.Now().Add(24 * time.Hour)
	require.NoError(t, db.CreateSession("tok-1", u.ID, expires))

	s, err := db.GetSession("tok-1")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, u.ID, s.UserID)
	assert.WithinDuration(t, expires, s.ExpiresAt, time.Second)

	require.NoError(t, db.DeleteSession("tok-1"))
	gone, err := db.GetSession("tok-1")
	require.NoError(t, err)
	assert.Nil(t, gone)

	// Deleting again is a no-op.
	require.NoError(t, db.DeleteSession("tok-1"))
}

func TestAnalysesPagination(t *testing.T) {
	db := openTestDB(t)

	u, err := db.CreateUser("ada@example.com", "h", "free", 0)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := db.InsertAnalysis(&AnalysisRecord{
			UserID:          u.ID,
			Body:            "post",
			OverallScore:    50 + i,
			EngagementLevel: "Medium",
			ReachLevel:      "Good Reach",
			Narrative:       "n",
			SuggestionsJSON: "[]",
			OptimalTime:     "8:00 AM - 10:00 AM",
			FactorsJSON:     "[]",
		})
		require.NoError(t, err)
	}

	// Newest first: the last insert (score 54) leads page one.
	page1, err := db.ListAnalyses(u.ID, 2, 0)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, 54, page1[0].OverallScore)
	assert.Equal(t, 53, page1[1].OverallScore)

	page3, err := db.ListAnalyses(u.ID, 2, 4)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, 50, page3[0].OverallScore)

	total, err := db.CountAnalyses(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	// Another user's history is empty.
	other, err := db.CreateUser("bob@example.com", "h", "free", 0)
	require.NoError(t, err)
	none, err := db.ListAnalyses(other.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCountAnalysesSince(t *testing.T) {
	db := openTestDB(t)

	u, err := db.CreateUser("ada@example.com", "h", "free", 0)
	require.NoError(t, err)

	now := time.Now().UTC()
	stamps := []time.Time{
		now.Add(-36 * time.Hour),
		now.Add(-2 * time.Hour),
		now.Add(-time.Minute),
	}
	for _, ts := range stamps {
		_, err := db.InsertAnalysis(&AnalysisRecord{
			UserID: u.ID, Body: "p", EngagementLevel: "Low", ReachLevel: "Low Reach",
			Narrative: "n", SuggestionsJSON: "[]", OptimalTime: "x", FactorsJSON: "[]",
			CreatedAt: ts,
		})
		require.NoError(t, err)
	}

	n, err := db.CountAnalysesSince(u.ID, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestUsageEvents(t *testing.T) {
	db := openTestDB(t)

	u, err := db.CreateUser("ada@example.com", "h", "free", 0)
	require.NoError(t, err)

	require.NoError(t, db.InsertUsageEvent(u.ID, "signup", ""))
	require.NoError(t, db.InsertUsageEvent(u.ID, "analysis", "score=75"))

	events, err := db.ListUsageEvents(u.ID, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "analysis", events[0].Event)
	assert.Equal(t, "score=75", events[0].Detail)
	assert.Equal(t, "signup", events[1].Event)
}

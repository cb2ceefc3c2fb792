package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubeless"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpen_AppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
	assert.Equal(t, path, db.Path())
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	sess := cubeless.NewSession()
	sess.ApplyScramble("R U")
	start := sess.Cube().String()
	sess.SetRecording(true)
	for _, m := range []string{"U'", "U", "U'", "R'"} {
		sess.Press(m)
	}

	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := NewSessionRecord(sess, start, started)
	id, err := repo.Create(rec)
	require.NoError(t, err)
	assert.Equal(t, id, rec.SessionID)

	got, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "R U", got.Scramble)
	assert.Equal(t, start, got.StartFacelets)
	assert.Equal(t, cubeless.SolvedString, got.EndFacelets)
	assert.True(t, got.Solved)
	assert.Equal(t, 2, got.MoveCount)
	assert.Equal(t, []string{"U'", "U", "U'", "R'"}, got.Moves)
	assert.Equal(t, []string{"U'", "R'"}, got.Solution)
	assert.True(t, started.Equal(got.StartedAt))
}

func TestSessionRepository_GetMissing(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	got, err := repo.Get("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionRepository_ListNewestFirst(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		id, err := repo.Create(&SessionRecord{
			StartedAt:     base.Add(time.Duration(i) * time.Minute),
			StartFacelets: cubeless.SolvedString,
			EndFacelets:   cubeless.SolvedString,
			Solved:        true,
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	list, err := repo.List(2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[2], list[0].SessionID)
	assert.Equal(t, ids[1], list[1].SessionID)
	assert.Empty(t, list[0].Moves, "List does not load moves")

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSessionRepository_DeleteCascades(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	id, err := repo.Create(&SessionRecord{
		StartFacelets: cubeless.SolvedString,
		EndFacelets:   cubeless.SolvedString,
		Moves:         []string{"R", "R'"},
	})
	require.NoError(t, err)

	removed, err := repo.Delete(id)
	require.NoError(t, err)
	assert.True(t, removed)

	var moves int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM session_moves").Scan(&moves))
	assert.Zero(t, moves)

	removed, err = repo.Delete(id)
	require.NoError(t, err)
	assert.False(t, removed)
}

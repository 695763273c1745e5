package service

import (
	"context"
	"sync"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/workers"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memUsers is an in-memory UserRepository with the same atomicity as the
// SQL one: every method holds the lock for its whole read-modify-write.
type memUsers struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[int64]models.User)}
}

func (r *memUsers) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return models.User{}, store.ErrEmailAlreadyExists
		}
		if u.Username == user.Username {
			return models.User{}, store.ErrUsernameAlreadyExists
		}
	}

	r.nextID++
	user.UserID = r.nextID
	r.users[user.UserID] = user

	return user, nil
}

func (r *memUsers) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (r *memUsers) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return u, nil
}

func (r *memUsers) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindUserByUsername(ctx, username)
	return err == nil, nil
}

func (r *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUsers) RecordFailedAttempt(_ context.Context, userID int64, at time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return 0, store.ErrUserNotFound
	}
	u.LoginAttempts++
	u.LastAttemptTime = &at
	r.users[userID] = u

	return u.LoginAttempts, nil
}

func (r *memUsers) ResetLoginAttempts(_ context.Context, userID int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return store.ErrUserNotFound
	}
	u.LoginAttempts = 0
	u.LastAttemptTime = &at
	r.users[userID] = u

	return nil
}

func (r *memUsers) UpdatePassword(_ context.Context, userID int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return store.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	r.users[userID] = u

	return nil
}

type memNotes struct {
	mu     sync.Mutex
	nextID int64
	notes  map[int64]models.Note
}

func newMemNotes() *memNotes {
	return &memNotes{notes: make(map[int64]models.Note)}
}

func (r *memNotes) CreateNote(_ context.Context, note models.Note) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	note.NoteID = r.nextID
	r.notes[note.NoteID] = note

	return note.NoteID, nil
}

func (r *memNotes) ListNotes(_ context.Context, ownerID int64) ([]models.NoteSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	summaries := make([]models.NoteSummary, 0)
	for _, n := range r.notes {
		if n.OwnerID == ownerID {
			summaries = append(summaries, models.NoteSummary{NoteID: n.NoteID, Title: n.Title, CreationDate: n.CreationDate})
		}
	}
	return summaries, nil
}

func (r *memNotes) GetNote(_ context.Context, ownerID, noteID int64) (models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[noteID]
	if !ok || n.OwnerID != ownerID {
		return models.Note{}, store.ErrNoteNotFound
	}
	return n, nil
}

func (r *memNotes) UpdateNote(_ context.Context, note models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[note.NoteID]
	if !ok || n.OwnerID != note.OwnerID {
		return store.ErrNoteNotFound
	}
	r.notes[note.NoteID] = note
	return nil
}

func (r *memNotes) DeleteNote(_ context.Context, ownerID, noteID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[noteID]
	if !ok || n.OwnerID != ownerID {
		return store.ErrNoteNotFound
	}
	delete(r.notes, noteID)
	return nil
}

type testServer struct {
	clock  *fakeClock
	auth   AuthService
	tokens TokenService
	notes  NoteService
	users  *memUsers
}

// newTestServer wires the real server services over in-memory stores with
// the cheapest bcrypt cost.
func newTestServer() *testServer {
	clock := newFakeClock()
	cfg := testAppConfig()
	pool := workers.NewPool(4)
	hasher := crypto.NewCredentialHasher(cfg.PasswordHashCost, pool)
	tokens := NewTokenService(cfg, clock.Now)
	users := newMemUsers()

	notes := NewNoteService(newMemNotes(), hasher, crypto.NewNoteCipher(), pool, clock.Now, logger.Nop())

	return &testServer{
		clock:  clock,
		auth:   NewAuthService(users, hasher, tokens, cfg, clock.Now, logger.Nop()),
		tokens: tokens,
		notes:  NewNoteValidationService().Wrap(notes),
		users:  users,
	}
}

func TestScenario_RegisterLoginNoteLifecycle(t *testing.T) {
	srv := newTestServer()
	ctx := context.Background()

	_, err := srv.auth.Register(ctx, models.RegisterRequest{Email: "a@x.com", Username: "alice", Password: "Abcdef123!"})
	require.NoError(t, err)

	token, err := srv.auth.Login(ctx, models.LoginRequest{Username: "alice", Password: "Abcdef123!"})
	require.NoError(t, err)

	verified, err := srv.tokens.Verify(ctx, token.String())
	require.NoError(t, err)
	owner := verified.UserID

	noteID, err := srv.notes.Add(ctx, owner, models.NoteRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	list, err := srv.notes.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "t", list[0].Title)

	note, err := srv.notes.Get(ctx, owner, noteID)
	require.NoError(t, err)
	assert.Equal(t, "c", note.Content)

	require.NoError(t, srv.notes.Delete(ctx, owner, noteID))

	_, err = srv.notes.Get(ctx, owner, noteID)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestScenario_ThreeWrongLoginsLockTheAccount(t *testing.T) {
	srv := newTestServer()
	ctx := context.Background()

	_, err := srv.auth.Register(ctx, models.RegisterRequest{Email: "a@x.com", Username: "alice", Password: "Abcdef123!"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		srv.clock.Advance(time.Minute)
		_, err = srv.auth.Login(ctx, models.LoginRequest{Username: "alice", Password: "WrongPass"})
		assert.ErrorIs(t, err, ErrInvalidCredentials, "attempt %d", i+1)
	}

	srv.clock.Advance(time.Minute)
	_, err = srv.auth.Login(ctx, models.LoginRequest{Username: "alice", Password: "Abcdef123!"})
	assert.ErrorIs(t, err, ErrAccountLocked)

	// rejected logins while locked do not extend the window
	srv.clock.Advance(59 * time.Minute)
	_, err = srv.auth.Login(ctx, models.LoginRequest{Username: "alice", Password: "Abcdef123!"})
	assert.NoError(t, err)

	user, err := srv.users.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, user.LoginAttempts)
}

func TestScenario_EncryptedNoteOwnership(t *testing.T) {
	srv := newTestServer()
	ctx := context.Background()

	alice, err := srv.auth.Register(ctx, models.RegisterRequest{Email: "a@x.com", Username: "alice", Password: "Abcdef123!"})
	require.NoError(t, err)
	bob, err := srv.auth.Register(ctx, models.RegisterRequest{Email: "b@x.com", Username: "bob", Password: "Abcdef123!"})
	require.NoError(t, err)

	noteID, err := srv.notes.Add(ctx, alice, models.NoteRequest{
		Title: "diary", Content: "dear diary", IsEncrypted: true, Passphrase: "Passphrase1!",
	})
	require.NoError(t, err)

	stored, err := srv.notes.Get(ctx, alice, noteID)
	require.NoError(t, err)
	assert.NotEqual(t, "dear diary", stored.Content)
	assert.NotEmpty(t, stored.Password)

	_, err = srv.notes.Get(ctx, bob, noteID)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
	assert.ErrorIs(t, srv.notes.Edit(ctx, bob, noteID, models.NoteRequest{Title: "x", Content: "y"}), store.ErrNoteNotFound)
	assert.ErrorIs(t, srv.notes.Delete(ctx, bob, noteID), store.ErrNoteNotFound)

	plain, err := crypto.NewNoteCipher().Decrypt(stored.Content, "Passphrase1!")
	require.NoError(t, err)
	assert.Equal(t, "dear diary", plain)
}

func TestScenario_LongSecrets(t *testing.T) {
	srv := newTestServer()
	ctx := context.Background()

	longPassword := "Abcdef123!" + strings.Repeat("x", 70)
	longPassphrase := "Passphrase1!" + strings.Repeat("p", 100)

	owner, err := srv.auth.Register(ctx, models.RegisterRequest{Email: "a@x.com", Username: "alice", Password: longPassword})
	require.NoError(t, err)

	_, err = srv.auth.Login(ctx, models.LoginRequest{Username: "alice", Password: longPassword})
	require.NoError(t, err)

	noteID, err := srv.notes.Add(ctx, owner, models.NoteRequest{
		Title: "diary", Content: "dear diary", IsEncrypted: true, Passphrase: longPassphrase,
	})
	require.NoError(t, err)

	stored, err := srv.notes.Get(ctx, owner, noteID)
	require.NoError(t, err)

	plain, err := crypto.NewNoteCipher().Decrypt(stored.Content, longPassphrase)
	require.NoError(t, err)
	assert.Equal(t, "dear diary", plain)
}

package di

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moon-89/HRMIS/pkg/config"
	"github.com/Moon-89/HRMIS/pkg/hrclient"
	"github.com/Moon-89/HRMIS/pkg/logger"
)

const testSecret = "e2e-test-secret"

func newTestServer(t *testing.T) (*httptest.Server, *Container) {
	return newTestServerWithTTL(t, 15*time.Minute)
}

func newTestServerWithTTL(t *testing.T, accessTTL time.Duration) (*httptest.Server, *Container) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "hrmis-test"
	cfg.App.Environment = "development"
	cfg.Server.Port = 0
	cfg.JWT.Secret = testSecret
	cfg.JWT.AccessTokenTTL = accessTTL
	cfg.JWT.SessionTTL = 7 * 24 * time.Hour
	cfg.JWT.Issuer = "hrmis-test"
	cfg.Admin.Emails = []string{"memona@hrmis.com", "memona@hrmis"}

	container, err := New(cfg, logger.Get())
	require.NoError(t, err)

	srv := httptest.NewServer(container.Router())
	t.Cleanup(srv.Close)
	return srv, container
}

func newClient(t *testing.T, srv *httptest.Server, opts ...hrclient.Option) *hrclient.Client {
	t.Helper()
	c, err := hrclient.New(hrclient.Config{BaseURL: srv.URL}, opts...)
	require.NoError(t, err)
	return c
}

func TestSeededAdminLogin(t *testing.T) {
	srv, _ := newTestServer(t)
	c := newClient(t, srv)

	user, err := c.Login(context.Background(), "memona@hrmis.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "Admin", user.Role)
	assert.Equal(t, int64(1), user.ID)
	assert.NotEmpty(t, c.Token())

	profile, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "memona@hrmis.com", profile.Email)
}

func TestSeedData(t *testing.T) {
	srv, _ := newTestServer(t)
	c := newClient(t, srv)

	_, err := c.Login(context.Background(), "memona@hrmis.com", "password123")
	require.NoError(t, err)

	leaves, err := c.ListLeaves(context.Background(), hrclient.LeaveFilter{})
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Equal(t, "Pending", leaves[0].Status)
	require.NotNil(t, leaves[0].User)
	assert.Equal(t, "Memona", leaves[0].User.Name)

	tasks, err := c.ListTasks(context.Background(), hrclient.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	srv, _ := newTestServer(t)
	c := newClient(t, srv)

	_, err := c.Register(context.Background(), "Imposter", "MEMONA@hrmis.com", "secret")
	require.ErrorIs(t, err, hrclient.ErrRegistrationFailed)
	assert.Contains(t, err.Error(), "User already exists")
	assert.Empty(t, c.Token())
}

func TestLeaveOwnershipEnforced(t *testing.T) {
	srv, _ := newTestServer(t)

	other := newClient(t, srv)
	_, err := other.Register(context.Background(), "Other", "other@hrmis.com", "secret")
	require.NoError(t, err)

	// The seeded leave belongs to the admin, not this account.
	status := "Approved"
	_, err = other.UpdateLeave(context.Background(), 1, hrclient.UpdateLeaveRequest{Status: &status})
	require.Error(t, err)

	var apiErr *hrclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 403, apiErr.StatusCode)
	assert.Equal(t, "Access Denied: You can only edit your own leave.", apiErr.Message)
}

func TestExpiredTokenRefreshesTransparently(t *testing.T) {
	srv, container := newTestServer(t)

	// A login establishes the server-side session the refresh will check.
	bootstrap := newClient(t, srv)
	_, err := bootstrap.Login(context.Background(), "memona@hrmis.com", "password123")
	require.NoError(t, err)

	// Forge an authentic but long-expired token for the same account, as if
	// this process had been asleep past the token TTL.
	past := time.Now().Add(-24 * time.Hour)
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   1,
		"email": "memona@hrmis.com",
		"role":  "Admin",
		"iss":   container.Config.JWT.Issuer,
		"iat":   past.Unix(),
		"exp":   past.Add(15 * time.Minute).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	store := hrclient.NewMemoryCredentialStore()
	require.NoError(t, store.StoreToken(expired))

	c := newClient(t, srv, hrclient.WithCredentialStore(store))

	user, err := c.Resume(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "memona@hrmis.com", user.Email)
	assert.NotEqual(t, expired, c.Token())
}

func TestForgedTokenExpiresSession(t *testing.T) {
	srv, _ := newTestServer(t)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   1,
		"email": "memona@hrmis.com",
		"role":  "Admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	store := hrclient.NewMemoryCredentialStore()
	require.NoError(t, store.StoreToken(forged))

	fired := false
	c := newClient(t, srv,
		hrclient.WithCredentialStore(store),
		hrclient.WithSessionExpiredHandler(func() { fired = true }),
	)

	_, err = c.Profile(context.Background())
	require.ErrorIs(t, err, hrclient.ErrSessionExpired)
	assert.True(t, fired)
	assert.Empty(t, c.Token())
}

func TestLogoutInvalidatesRefresh(t *testing.T) {
	// Tokens expire almost immediately so the refresh path is exercised
	// against the real server.
	srv, _ := newTestServerWithTTL(t, 300*time.Millisecond)
	c := newClient(t, srv)

	_, err := c.Login(context.Background(), "memona@hrmis.com", "password123")
	require.NoError(t, err)
	token := c.Token()

	// While the session lives, an expired token recovers transparently.
	time.Sleep(400 * time.Millisecond)
	_, err = c.Profile(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, token, c.Token())
	token = c.Token()

	time.Sleep(400 * time.Millisecond)

	require.NoError(t, c.Logout(context.Background()))
	assert.Empty(t, c.Token())

	// The old token's signature is still good, but its session is gone, so
	// a client that kept it cannot refresh its way back in.
	store := hrclient.NewMemoryCredentialStore()
	require.NoError(t, store.StoreToken(token))
	revived := newClient(t, srv, hrclient.WithCredentialStore(store))

	_, err = revived.Profile(context.Background())
	require.ErrorIs(t, err, hrclient.ErrSessionExpired)
}

func TestDirectoryCRUDRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)
	c := newClient(t, srv)

	_, err := c.Login(context.Background(), "memona@hrmis.com", "password123")
	require.NoError(t, err)

	created, err := c.CreateUser(context.Background(), hrclient.CreateUserRequest{
		Name:  "Bob Builder",
		Email: "bob@hrmis.com",
		Role:  "Employee",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	byEmail, err := c.GetUserByEmail(context.Background(), "bob@hrmis.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	name := "Bob the Builder"
	updated, err := c.UpdateUser(context.Background(), created.ID, hrclient.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)

	found, err := c.ListUsers(context.Background(), hrclient.UserFilter{Query: "builder"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	require.NoError(t, c.DeleteUser(context.Background(), created.ID))
	_, err = c.GetUser(context.Background(), created.ID)
	var apiErr *hrclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestTasksEndToEnd(t *testing.T) {
	srv, _ := newTestServer(t)
	c := newClient(t, srv)

	_, err := c.Login(context.Background(), "memona@hrmis.com", "password123")
	require.NoError(t, err)

	task, err := c.CreateTask(context.Background(), hrclient.CreateTaskRequest{Title: "Write minutes"})
	require.NoError(t, err)
	assert.Equal(t, "Medium", task.Priority)
	assert.Equal(t, "Todo", task.Status)

	done := "Done"
	updated, err := c.UpdateTask(context.Background(), task.ID, hrclient.UpdateTaskRequest{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, "Done", updated.Status)

	require.NoError(t, c.DeleteTask(context.Background(), task.ID))
}

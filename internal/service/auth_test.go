package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/giftlink/giftlink-backend/internal/crypto"
	"github.com/giftlink/giftlink-backend/internal/errs"
	"github.com/giftlink/giftlink-backend/internal/models"
	"github.com/giftlink/giftlink-backend/internal/repository"
	"github.com/giftlink/giftlink-backend/internal/token"
)

type fakeUsers struct {
	byEmail map[string]*models.User
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*models.User{}}
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cpy := *u
	return &cpy, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID.Hex() == id {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Insert(_ context.Context, user *models.User) (string, error) {
	user.ID = primitive.NewObjectID()
	cpy := *user
	f.byEmail[user.Email] = &cpy
	return user.ID.Hex(), nil
}

func (f *fakeUsers) FindAndReplace(_ context.Context, email string, user *models.User) (*models.User, error) {
	prev, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	user.ID = prev.ID
	cpy := *user
	f.byEmail[email] = &cpy
	out := cpy
	return &out, nil
}

func newTestAuthService(users repository.UserRepository) *AuthServiceImpl {
	issuer := token.NewIssuer("test-secret", time.Hour, 10*time.Minute)
	return NewAuthService(users, issuer, zap.NewNop())
}

func TestRegister_ThenConflict(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUsers())
	in := RegisterInput{Email: "jane@example.com", FirstName: "Jane", LastName: "Doe", Password: "secret123"}

	res, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "jane@example.com", res.Email)

	// Second registration with the same email must conflict.
	_, err = svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUsers())

	cases := []RegisterInput{
		{FirstName: "Jane", LastName: "Doe", Password: "x"},
		{Email: "a@b.c", LastName: "Doe", Password: "x"},
		{Email: "a@b.c", FirstName: "Jane", Password: "x"},
		{Email: "a@b.c", FirstName: "Jane", LastName: "Doe"},
	}
	for _, in := range cases {
		_, err := svc.Register(context.Background(), in)
		assert.ErrorIs(t, err, errs.ErrValidation)
	}
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	t.Parallel()

	users := newFakeUsers()
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email: "jane@example.com", FirstName: "Jane", LastName: "Doe", Password: "secret123",
	})
	require.NoError(t, err)

	stored := users.byEmail["jane@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, crypto.VerifyPassword("secret123", stored.PasswordHash))
}

func TestLogin(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUsers())
	_, err := svc.Register(context.Background(), RegisterInput{
		Email: "jane@example.com", FirstName: "Jane", LastName: "Doe", Password: "secret123",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), "jane@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "Jane", res.FirstName)
	assert.Equal(t, "jane@example.com", res.Email)

	// Wrong password and unknown email are indistinguishable.
	_, err = svc.Login(context.Background(), "jane@example.com", "wrong")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = svc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUsers())

	_, err := svc.Login(context.Background(), "", "secret123")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Login(context.Background(), "jane@example.com", "")
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	t.Parallel()

	users := newFakeUsers()
	svc := newTestAuthService(users)

	res, err := svc.Register(context.Background(), RegisterInput{
		Email: "jane@example.com", FirstName: "Jane", LastName: "Doe", Password: "secret123",
	})
	require.NoError(t, err)

	before := *users.byEmail["jane@example.com"]

	first := "Janet"
	updated, err := svc.UpdateProfile(context.Background(), res.UserID, ProfilePatch{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Janet", updated.FirstName)
	assert.NotEmpty(t, updated.Token)

	after := users.byEmail["jane@example.com"]
	assert.Equal(t, "Janet", after.FirstName)
	assert.Equal(t, before.LastName, after.LastName, "omitted field keeps prior value")
	assert.Equal(t, before.PasswordHash, after.PasswordHash, "omitted password keeps prior hash")
	require.NotNil(t, after.UpdatedAt)

	firstUpdate := *after.UpdatedAt

	// A later update strictly advances updatedAt.
	time.Sleep(5 * time.Millisecond)
	last := "Smith"
	_, err = svc.UpdateProfile(context.Background(), res.UserID, ProfilePatch{LastName: &last})
	require.NoError(t, err)

	after = users.byEmail["jane@example.com"]
	assert.True(t, after.UpdatedAt.After(firstUpdate))
	assert.Equal(t, "Janet", after.FirstName)
	assert.Equal(t, "Smith", after.LastName)
}

func TestUpdateProfile_PasswordRehashed(t *testing.T) {
	t.Parallel()

	users := newFakeUsers()
	svc := newTestAuthService(users)

	res, err := svc.Register(context.Background(), RegisterInput{
		Email: "jane@example.com", FirstName: "Jane", LastName: "Doe", Password: "secret123",
	})
	require.NoError(t, err)

	pw := "new-password"
	_, err = svc.UpdateProfile(context.Background(), res.UserID, ProfilePatch{Password: &pw})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "jane@example.com", "new-password")
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), "jane@example.com", "secret123")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUsers())

	first := "Janet"
	_, err := svc.UpdateProfile(context.Background(), primitive.NewObjectID().Hex(), ProfilePatch{FirstName: &first})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestLoginWithGoogle_CreatesAccountOnce(t *testing.T) {
	t.Parallel()

	users := newFakeUsers()
	svc := newTestAuthService(users)

	res, err := svc.LoginWithGoogle(context.Background(), "jane@example.com", "Jane", "Doe")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	require.Len(t, users.byEmail, 1)

	// Second login reuses the existing account.
	again, err := svc.LoginWithGoogle(context.Background(), "jane@example.com", "Jane", "Doe")
	require.NoError(t, err)
	assert.Equal(t, res.UserID, again.UserID)
	assert.Len(t, users.byEmail, 1)
}

package user

import (
	"testing"

	"carhive/models"
	"carhive/services"
	"carhive/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (f *fakeUserRepo) Create(u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func newAuthService(t *testing.T) *DefaultUserService {
	t.Helper()

	mr := miniredis.RunT(t)
	utils.SessionClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { utils.SessionClient = nil })

	return &DefaultUserService{Repo: newFakeUserRepo()}
}

func validSignUp() SignUpInput {
	return SignUpInput{
		Email:     "dana@example.com",
		Password:  "hunter22",
		FirstName: "Dana",
		LastName:  "Reyes",
		IsOwner:   true,
	}
}

func TestSignUpPopulatesSession(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.SignUp(validSignUp())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	assert.Equal(t, "Dana", resp.Session.FirstName)
	assert.Equal(t, "Reyes", resp.Session.LastName)
	assert.Equal(t, "dana@example.com", resp.Session.Email)
	assert.NotEmpty(t, resp.Session.UID)
	assert.True(t, resp.Session.IsOwner)

	stored, err := utils.GetSession(utils.GetSessionClient(), utils.HashToken(resp.Token))
	require.NoError(t, err)
	assert.Equal(t, resp.Session, *stored)
}

func TestSignUpValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SignUpInput)
	}{
		{"empty email", func(in *SignUpInput) { in.Email = "" }},
		{"empty first name", func(in *SignUpInput) { in.FirstName = "" }},
		{"empty last name", func(in *SignUpInput) { in.LastName = "" }},
		{"short password", func(in *SignUpInput) { in.Password = "abc12" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newAuthService(t)
			input := validSignUp()
			tc.mutate(&input)

			resp, err := svc.SignUp(input)
			assert.Nil(t, resp)

			var validation services.ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.SignUp(validSignUp())
	require.NoError(t, err)

	resp, err := svc.SignUp(validSignUp())
	assert.Nil(t, resp)

	var authErr services.AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestSignInRebuildsSession(t *testing.T) {
	svc := newAuthService(t)

	signedUp, err := svc.SignUp(validSignUp())
	require.NoError(t, err)

	resp, err := svc.SignIn("dana@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, signedUp.Session, resp.Session)
	assert.NotEmpty(t, resp.Token)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.SignUp(validSignUp())
	require.NoError(t, err)

	var authErr services.AuthError

	resp, err := svc.SignIn("dana@example.com", "wrong-pass")
	assert.Nil(t, resp)
	require.ErrorAs(t, err, &authErr)

	resp, err = svc.SignIn("nobody@example.com", "hunter22")
	assert.Nil(t, resp)
	require.ErrorAs(t, err, &authErr)
}

// Sign-out clears the whole session in one delete: afterwards no field
// survives, whatever was populated before.
func TestSignOutResetsSessionAtomically(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.SignUp(validSignUp())
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(resp.Token))

	stored, err := utils.GetSession(utils.GetSessionClient(), utils.HashToken(resp.Token))
	assert.Nil(t, stored)
	assert.ErrorIs(t, err, redis.Nil)

	// Signing out again is a clean no-op.
	assert.NoError(t, svc.SignOut(resp.Token))
}

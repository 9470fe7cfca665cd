package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rkeng/billing-api/internal/application/auth"
	"github.com/rkeng/billing-api/internal/application/dto"
	"github.com/rkeng/billing-api/internal/domain"
	"github.com/rkeng/billing-api/internal/domain/entity"
	pkgjwt "github.com/rkeng/billing-api/pkg/jwt"
)

// ─── In-memory fakes ─────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*entity.User{},
		byID:    map[string]*entity.User{},
	}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byEmail[u.Email] = &cp
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*entity.User, error)       { return r.byID[id], nil }
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) { return r.byEmail[email], nil }

func (r *fakeUserRepo) UpdatePassword(id, hash string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

type fakeMailer struct {
	sentTo    string
	sentToken string
}

func (m *fakeMailer) SendPasswordReset(toEmail, token string) error {
	m.sentTo = toEmail
	m.sentToken = token
	return nil
}

func newUseCase() (*auth.AuthUseCase, *fakeUserRepo, *fakeMailer) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	uc := auth.NewAuthUseCase(repo, mailer, auth.JWTConfig{
		Secret:          "unit-test-secret",
		ExpMinutes:      60,
		ResetExpMinutes: 15,
		Issuer:          "billing-api-test",
	})
	return uc, repo, mailer
}

// ─── Tests ───────────────────────────────────────────────────────────────────

func TestRegister_HashesPassword(t *testing.T) {
	uc, repo, _ := newUseCase()

	id, err := uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "secret-password"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	stored := repo.byEmail["a@b.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret-password", stored.PasswordHash, "plaintext must never be stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret-password")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, repo, _ := newUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "secret-password"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "other-password"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, repo.byID, 1, "no second row may be created")
}

func TestLogin_ReturnsBearerToken(t *testing.T) {
	uc, _, _ := newUseCase()
	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "secret-password"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)
	assert.NotEmpty(t, out.AccessToken)

	_, email, err := pkgjwt.Parse("unit-test-secret", out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _, _ := newUseCase()
	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "secret-password"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, out, "no token may be issued on bad credentials")
}

func TestLogin_UnknownEmail_SameError(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.Login(dto.LoginRequest{Email: "nobody@b.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"unknown email and bad password must be indistinguishable")
}

func TestForgotPassword_SendsTokenToMailer(t *testing.T) {
	uc, _, mailer := newUseCase()
	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "secret-password"})
	require.NoError(t, err)

	require.NoError(t, uc.ForgotPassword(dto.ForgotPasswordRequest{Email: "a@b.com"}))
	assert.Equal(t, "a@b.com", mailer.sentTo)

	_, email, err := pkgjwt.ParseReset("unit-test-secret", mailer.sentToken)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email)
}

func TestForgotPassword_UnknownUser(t *testing.T) {
	uc, _, mailer := newUseCase()

	err := uc.ForgotPassword(dto.ForgotPasswordRequest{Email: "nobody@b.com"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, mailer.sentToken, "no token may be issued for unknown users")
}

func TestResetPassword_FullFlow(t *testing.T) {
	uc, _, mailer := newUseCase()
	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "old-password"})
	require.NoError(t, err)
	require.NoError(t, uc.ForgotPassword(dto.ForgotPasswordRequest{Email: "a@b.com"}))

	err = uc.ResetPassword(dto.ResetPasswordRequest{Token: mailer.sentToken, NewPassword: "new-password"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "old-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	out, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "new-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
}

func TestResetPassword_SessionTokenRejected(t *testing.T) {
	uc, _, _ := newUseCase()
	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "old-password"})
	require.NoError(t, err)
	out, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "old-password"})
	require.NoError(t, err)

	err = uc.ResetPassword(dto.ResetPasswordRequest{Token: out.AccessToken, NewPassword: "new-password"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

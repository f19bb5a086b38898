package service

import (
	"errors"
	"testing"
	"time"

	"github.com/fitposture/fitposture/internal/model"
	"github.com/fitposture/fitposture/internal/repository"
)

type stubUserRepo struct {
	byEmail map[string]*model.User
	byID    map[string]*model.User
	created []*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: make(map[string]*model.User),
		byID:    make(map[string]*model.User),
	}
}

func (r *stubUserRepo) add(user *model.User) {
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
}

func (r *stubUserRepo) Create(user *model.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	r.add(user)
	r.created = append(r.created, user)
	return nil
}

func (r *stubUserRepo) ByID(id string) (*model.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *stubUserRepo) ByEmail(email string) (*model.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *stubUserRepo) Update(user *model.User) error {
	r.add(user)
	return nil
}

func (r *stubUserRepo) Delete(id string) error {
	user, ok := r.byID[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, user.Email)
	return nil
}

type stubProfileRepo struct {
	profiles  map[string]*model.Profile
	createErr error
	creates   int
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[string]*model.Profile)}
}

func (r *stubProfileRepo) ByID(id string) (*model.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return profile, nil
}

func (r *stubProfileRepo) Create(profile *model.Profile) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.creates++
	r.profiles[profile.ID] = profile
	return nil
}

func (r *stubProfileRepo) Upsert(profile *model.Profile) error {
	r.profiles[profile.ID] = profile
	return nil
}

type stubTokenRepo struct {
	tokens map[string]*model.Token
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{tokens: make(map[string]*model.Token)}
}

func (r *stubTokenRepo) Create(token *model.Token) error {
	r.tokens[token.Token] = token
	return nil
}

func (r *stubTokenRepo) ConsumeToken(token string) (*model.Token, error) {
	t, ok := r.tokens[token]
	if !ok || time.Now().After(t.ExpiresAt) {
		return nil, repository.ErrTokenNotFound
	}
	delete(r.tokens, token)
	return t, nil
}

func (r *stubTokenRepo) DeleteByUserAndType(userID, tokenType string) error {
	for key, t := range r.tokens {
		if t.UserID == userID && t.Type == tokenType {
			delete(r.tokens, key)
		}
	}
	return nil
}

type stubSubscriptionRepo struct {
	byUserID map[string]*model.Subscription
}

func newStubSubscriptionRepo() *stubSubscriptionRepo {
	return &stubSubscriptionRepo{byUserID: make(map[string]*model.Subscription)}
}

func (r *stubSubscriptionRepo) Create(sub *model.Subscription) error {
	r.byUserID[sub.UserID] = sub
	return nil
}

func (r *stubSubscriptionRepo) ByUserID(userID string) (*model.Subscription, error) {
	sub, ok := r.byUserID[userID]
	if !ok {
		return nil, repository.ErrSubscriptionNotFound
	}
	return sub, nil
}

func (r *stubSubscriptionRepo) ByProviderSubscriptionID(providerSubID string) (*model.Subscription, error) {
	return nil, repository.ErrSubscriptionNotFound
}

func (r *stubSubscriptionRepo) ByProviderCustomerID(providerCustomerID string) (*model.Subscription, error) {
	return nil, repository.ErrSubscriptionNotFound
}

func (r *stubSubscriptionRepo) Update(sub *model.Subscription) error {
	r.byUserID[sub.UserID] = sub
	return nil
}

type authFixture struct {
	service  *AuthService
	users    *stubUserRepo
	profiles *stubProfileRepo
	tokens   *stubTokenRepo
	subs     *stubSubscriptionRepo
}

func newAuthFixture() *authFixture {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	tokens := newStubTokenRepo()
	subs := newStubSubscriptionRepo()

	svc := NewAuthService(
		users,
		profiles,
		tokens,
		NewSubscriptionService(subs),
		NewEmailService("", "test@example.com", "http://localhost:8090", "FitPosture", true),
		"test-secret",
		false,
		time.Hour,
		time.Hour,
		time.Hour,
	)

	return &authFixture{service: svc, users: users, profiles: profiles, tokens: tokens, subs: subs}
}

func (f *authFixture) registerConfirmed(t *testing.T, email, password string) *model.User {
	t.Helper()

	user, err := f.service.Register(email, password)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	now := time.Now()
	user.EmailConfirmedAt = &now
	if err := f.users.Update(user); err != nil {
		t.Fatalf("Update: %v", err)
	}
	return user
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture()

	if _, err := f.service.Register("kim@example.com", "correct-horse-battery"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := f.service.Register("kim@example.com", "correct-horse-battery")
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLoginUnconfirmedAccount(t *testing.T) {
	f := newAuthFixture()

	if _, err := f.service.Register("kim@example.com", "correct-horse-battery"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := f.service.Login("kim@example.com", "correct-horse-battery")
	if !errors.Is(err, ErrEmailNotConfirmed) {
		t.Fatalf("expected ErrEmailNotConfirmed, got %v", err)
	}
	want := "Please check your email for the confirmation link before signing in."
	if err.Error() != want {
		t.Errorf("expected message %q, got %q", want, err.Error())
	}
	if len(f.profiles.profiles) != 0 {
		t.Errorf("expected no profile before first successful login")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture()
	f.registerConfirmed(t, "kim@example.com", "correct-horse-battery")

	_, err := f.service.Login("kim@example.com", "wrong-horse-battery")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Login("nobody@example.com", "correct-horse-battery")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestFirstLoginCreatesProfileStub(t *testing.T) {
	f := newAuthFixture()
	f.registerConfirmed(t, "kim.lee@example.com", "correct-horse-battery")

	user, err := f.service.Login("kim.lee@example.com", "correct-horse-battery")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	profile, err := f.profiles.ByID(user.ID)
	if err != nil {
		t.Fatalf("profile not created on first login: %v", err)
	}
	if profile.FullName != "kim.lee" {
		t.Errorf("expected stub name %q, got %q", "kim.lee", profile.FullName)
	}
	if profile.HeightUnit != model.HeightUnitCentimeters || profile.WeightUnit != model.WeightUnitKilograms {
		t.Errorf("expected default units cm/kg, got %s/%s", profile.HeightUnit, profile.WeightUnit)
	}

	sub, err := f.subs.ByUserID(user.ID)
	if err != nil {
		t.Fatalf("subscription not created on first login: %v", err)
	}
	if sub.PlanID != model.SubscriptionPlanFree {
		t.Errorf("expected free plan, got %q", sub.PlanID)
	}
}

func TestRepeatLoginDoesNotRecreateProfile(t *testing.T) {
	f := newAuthFixture()
	f.registerConfirmed(t, "kim@example.com", "correct-horse-battery")

	for i := 0; i < 3; i++ {
		if _, err := f.service.Login("kim@example.com", "correct-horse-battery"); err != nil {
			t.Fatalf("Login %d: %v", i, err)
		}
	}

	if f.profiles.creates != 1 {
		t.Errorf("expected exactly one profile insert, got %d", f.profiles.creates)
	}
}

func TestProfileInsertFailureAbortsLogin(t *testing.T) {
	f := newAuthFixture()
	f.registerConfirmed(t, "kim@example.com", "correct-horse-battery")
	f.profiles.createErr = errors.New("disk full")

	_, err := f.service.Login("kim@example.com", "correct-horse-battery")
	if err == nil {
		t.Fatal("expected login to fail when profile insert fails")
	}
	if len(f.subs.byUserID) != 0 {
		t.Errorf("expected no subscription when bootstrap aborted")
	}
}

func TestConfirmEmailConsumesToken(t *testing.T) {
	f := newAuthFixture()

	user, err := f.service.Register("kim@example.com", "correct-horse-battery")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	var confirmToken string
	for token := range f.tokens.tokens {
		confirmToken = token
	}
	if confirmToken == "" {
		t.Fatal("expected a confirmation token after Register")
	}

	confirmed, err := f.service.ConfirmEmail(confirmToken)
	if err != nil {
		t.Fatalf("ConfirmEmail: %v", err)
	}
	if confirmed.ID != user.ID {
		t.Errorf("confirmed wrong user: %s", confirmed.ID)
	}
	if confirmed.EmailConfirmedAt == nil {
		t.Error("expected email_confirmed_at to be set")
	}

	if _, err := f.service.ConfirmEmail(confirmToken); err == nil {
		t.Error("expected second use of confirmation link to fail")
	}
}

func TestAuthenticateOAuthCreatesConfirmedUser(t *testing.T) {
	f := newAuthFixture()

	user, err := f.service.AuthenticateOAuth("kim@example.com", "google")
	if err != nil {
		t.Fatalf("AuthenticateOAuth: %v", err)
	}
	if user.EmailConfirmedAt == nil {
		t.Error("expected OAuth account to be confirmed")
	}
	if user.HasPassword() {
		t.Error("expected OAuth account to have no password")
	}
	if _, err := f.profiles.ByID(user.ID); err != nil {
		t.Errorf("expected profile stub after OAuth sign-in: %v", err)
	}
}

func TestResetPasswordConfirmsEmail(t *testing.T) {
	f := newAuthFixture()

	if _, err := f.service.Register("kim@example.com", "correct-horse-battery"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := f.service.RequestPasswordReset("kim@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset: %v", err)
	}

	var resetToken string
	for token, tm := range f.tokens.tokens {
		if tm.Type == model.TokenTypePasswordReset {
			resetToken = token
		}
	}
	if resetToken == "" {
		t.Fatal("expected a reset token")
	}

	user, err := f.service.ResetPassword(resetToken, "brand-new-passphrase")
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if user.EmailConfirmedAt == nil {
		t.Error("expected reset link to confirm the email")
	}

	if _, err := f.service.Login("kim@example.com", "brand-new-passphrase"); err != nil {
		t.Errorf("Login with new password: %v", err)
	}
}

package services

import (
	"context"
	"errors"
	"time"

	"weddingly/internal/domain"
)

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byID      map[string]*domain.User
	byEmail   map[string]*domain.User
	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (f *fakeUserRepo) add(u *domain.User) {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = "user-created-1"
	f.add(u)
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

// fakeSiteRepo implements domain.SiteRepository for tests.
type fakeSiteRepo struct {
	byUserID  map[string]*domain.WeddingSite
	bySlug    map[string]*domain.WeddingSite
	createErr error
	updateErr error
	getErr    error
	updated   int
	created   int
}

func newFakeSiteRepo() *fakeSiteRepo {
	return &fakeSiteRepo{
		byUserID: make(map[string]*domain.WeddingSite),
		bySlug:   make(map[string]*domain.WeddingSite),
	}
}

func (f *fakeSiteRepo) add(s *domain.WeddingSite) {
	f.byUserID[s.UserID] = s
	f.bySlug[s.Slug] = s
}

func (f *fakeSiteRepo) Create(ctx context.Context, s *domain.WeddingSite) error {
	if f.createErr != nil {
		return f.createErr
	}
	if other, ok := f.bySlug[s.Slug]; ok && other.UserID != s.UserID {
		return domain.ErrSlugTaken
	}
	s.ID = "site-created-1"
	f.add(s)
	f.created++
	return nil
}

func (f *fakeSiteRepo) GetByUserID(ctx context.Context, userID string) (*domain.WeddingSite, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if s, ok := f.byUserID[userID]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSiteRepo) GetBySlug(ctx context.Context, slug string) (*domain.WeddingSite, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if s, ok := f.bySlug[slug]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSiteRepo) Update(ctx context.Context, s *domain.WeddingSite) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if other, ok := f.bySlug[s.Slug]; ok && other.ID != s.ID {
		return domain.ErrSlugTaken
	}
	f.add(s)
	f.updated++
	return nil
}

// fakeEventRepo implements domain.EventRepository for tests. It records the
// last replaced list per site.
type fakeEventRepo struct {
	bySiteID   map[string][]*domain.Event
	replaceErr error
	listErr    error
	replaces   int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{bySiteID: make(map[string][]*domain.Event)}
}

func (f *fakeEventRepo) ReplaceForSite(ctx context.Context, siteID string, events []*domain.Event) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	for i, e := range events {
		e.ID = "event-" + string(rune('a'+i))
		e.SiteID = siteID
	}
	f.bySiteID[siteID] = events
	f.replaces++
	return nil
}

func (f *fakeEventRepo) ListBySiteID(ctx context.Context, siteID string) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	events := f.bySiteID[siteID]
	if events == nil {
		return []*domain.Event{}, nil
	}
	return events, nil
}

// fakeRSVPRepo implements domain.RSVPRepository for tests.
type fakeRSVPRepo struct {
	bySiteID  map[string][]*domain.RSVP
	createErr error
	listErr   error
}

func newFakeRSVPRepo() *fakeRSVPRepo {
	return &fakeRSVPRepo{bySiteID: make(map[string][]*domain.RSVP)}
}

func (f *fakeRSVPRepo) Create(ctx context.Context, r *domain.RSVP) error {
	if f.createErr != nil {
		return f.createErr
	}
	r.ID = "rsvp-created-1"
	f.bySiteID[r.SiteID] = append(f.bySiteID[r.SiteID], r)
	return nil
}

func (f *fakeRSVPRepo) ListBySiteID(ctx context.Context, siteID string) ([]*domain.RSVP, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	rsvps := f.bySiteID[siteID]
	if rsvps == nil {
		return []*domain.RSVP{}, nil
	}
	return rsvps, nil
}

// fakePasswordHasher implements domain.PasswordHasher for tests. Hashes are
// deterministic so comparisons can assert on values.
type fakePasswordHasher struct {
	saltErr error
	hashErr error
}

func (f *fakePasswordHasher) GenerateSalt() (string, error) {
	if f.saltErr != nil {
		return "", f.saltErr
	}
	return "salt-1", nil
}

func (f *fakePasswordHasher) Hash(salt, password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hash:" + salt + ":" + password, nil
}

func (f *fakePasswordHasher) Compare(hash, salt, password string) error {
	if hash == "hash:"+salt+":"+password {
		return nil
	}
	return errors.New("password mismatch")
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + userID, nil
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	sent []*domain.RSVPNotificationEmailData
	err  error
}

func (f *fakeEmailService) SendRSVPNotification(ctx context.Context, data *domain.RSVPNotificationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

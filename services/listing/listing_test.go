package listing

import (
	"context"
	"sync"
	"testing"

	"carhive/models"
	"carhive/services"
	"carhive/services/geocode"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeListingRepo struct {
	mu       sync.Mutex
	listings map[string]models.Listing
	queries  int
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[string]models.Listing)}
}

func (f *fakeListingRepo) Create(l *models.Listing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	l.ID = uuid.New().String()
	f.listings[l.ID] = *l
	return nil
}

func (f *fakeListingRepo) GetByID(id string) (*models.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l, ok := f.listings[id]; ok {
		return &l, nil
	}
	return nil, nil
}

func (f *fakeListingRepo) GetByIDs(ids []string) ([]models.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Listing
	for _, id := range ids {
		if l, ok := f.listings[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeListingRepo) GetByOwner(ownerID string) ([]models.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Listing
	for _, l := range f.listings {
		if l.CreatedByUID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeListingRepo) GetByCity(city string) ([]models.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++
	var out []models.Listing
	for _, l := range f.listings {
		if l.City == city {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]models.User
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

// fakeGeocoder resolves from a fixed table and records lookups.
type fakeGeocoder struct {
	known map[string]geocode.Coordinates
	calls int
}

func (f *fakeGeocoder) Resolve(_ context.Context, address string) (geocode.Coordinates, error) {
	f.calls++
	if c, ok := f.known[address]; ok {
		return c, nil
	}
	return geocode.Coordinates{}, geocode.ErrUnresolvable
}

func newService(t *testing.T) (*DefaultListingService, *fakeListingRepo, *fakeGeocoder) {
	t.Helper()
	repo := newFakeListingRepo()
	geo := &fakeGeocoder{known: map[string]geocode.Coordinates{
		"100 Main St, Austin": {Latitude: 30.27, Longitude: -97.74},
		"Austin":              {Latitude: 30.26, Longitude: -97.75},
	}}
	users := &fakeUserRepo{users: make(map[string]models.User)}
	return &DefaultListingService{Repo: repo, UserRepo: users, Geocoder: geo}, repo, geo
}

func validInput() CreateListingInput {
	return CreateListingInput{
		Brand:        "Toyota",
		Model:        "Camry",
		Color:        "Blue",
		LicensePlate: "ABC-123",
		Cost:         "45.0",
		City:         "Austin",
		Address:      "100 Main St",
		ImageURL:     "https://img.example/camry.jpg",
	}
}

func TestCreateListing(t *testing.T) {
	svc, repo, geo := newService(t)

	created, err := svc.CreateListing("owner-1", validInput())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.IsBooked)
	assert.Equal(t, "owner-1", created.CreatedByUID)
	assert.Equal(t, 45.0, created.Cost)
	assert.Equal(t, 30.27, created.Latitude)
	assert.Equal(t, -97.74, created.Longitude)
	assert.Equal(t, 1, geo.calls)

	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, *created, *stored)
}

func TestCreateListingIDsUnique(t *testing.T) {
	svc, _, _ := newService(t)

	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		created, err := svc.CreateListing("owner-1", validInput())
		require.NoError(t, err)
		require.False(t, seen[created.ID], "duplicate listing id %s", created.ID)
		seen[created.ID] = true
	}
}

func TestCreateListingValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateListingInput)
	}{
		{"empty brand", func(in *CreateListingInput) { in.Brand = "" }},
		{"empty model", func(in *CreateListingInput) { in.Model = "  " }},
		{"empty color", func(in *CreateListingInput) { in.Color = "" }},
		{"empty plate", func(in *CreateListingInput) { in.LicensePlate = "" }},
		{"empty city", func(in *CreateListingInput) { in.City = "" }},
		{"empty address", func(in *CreateListingInput) { in.Address = "" }},
		{"empty image", func(in *CreateListingInput) { in.ImageURL = "" }},
		{"unparseable cost", func(in *CreateListingInput) { in.Cost = "forty-five" }},
		{"negative cost", func(in *CreateListingInput) { in.Cost = "-1" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, geo := newService(t)
			input := validInput()
			tc.mutate(&input)

			created, err := svc.CreateListing("owner-1", input)
			assert.Nil(t, created)

			var validation services.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Empty(t, repo.listings)
			assert.Zero(t, geo.calls, "validation failures must not geocode")
		})
	}
}

func TestCreateListingUnresolvableAddress(t *testing.T) {
	svc, repo, _ := newService(t)
	input := validInput()
	input.Address = "nowhere at all"

	created, err := svc.CreateListing("owner-1", input)
	assert.Nil(t, created)

	var geoErr services.GeocodeError
	require.ErrorAs(t, err, &geoErr)
	assert.Empty(t, repo.listings)
}

func TestGetListingNotFound(t *testing.T) {
	svc, _, _ := newService(t)

	rec, err := svc.GetListing("missing")
	assert.Nil(t, rec)

	var notFound services.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetListingDetailResolvesOwnerName(t *testing.T) {
	svc, _, _ := newService(t)
	userRepo := svc.UserRepo.(*fakeUserRepo)
	owner := models.User{ID: "owner-1", FirstName: "Dana", LastName: "Reyes"}
	require.NoError(t, userRepo.Create(&owner))

	created, err := svc.CreateListing("owner-1", validInput())
	require.NoError(t, err)

	detail, err := svc.GetListingDetail(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dana", detail.OwnerFirstName)
	assert.Equal(t, "Reyes", detail.OwnerLastName)
}

func TestSearchByCity(t *testing.T) {
	svc, _, _ := newService(t)

	created, err := svc.CreateListing("owner-1", validInput())
	require.NoError(t, err)

	result, err := svc.SearchByCity("Austin")
	require.NoError(t, err)
	assert.Equal(t, 30.26, result.Center.Latitude)
	require.Len(t, result.Listings, 1)
	assert.Equal(t, created.ID, result.Listings[0].ID)
}

func TestSearchByCityIsCaseSensitive(t *testing.T) {
	svc, _, geo := newService(t)
	geo.known["austin"] = geocode.Coordinates{Latitude: 30.26, Longitude: -97.75}

	_, err := svc.CreateListing("owner-1", validInput())
	require.NoError(t, err)

	result, err := svc.SearchByCity("austin")
	require.NoError(t, err)
	assert.Empty(t, result.Listings, "city match is exact, not normalized")
}

func TestSearchByCityUnresolvable(t *testing.T) {
	svc, repo, _ := newService(t)

	result, err := svc.SearchByCity("Atlantis")
	assert.Nil(t, result)

	var geoErr services.GeocodeError
	require.ErrorAs(t, err, &geoErr)
	assert.Zero(t, repo.queries, "listings query must not run for an unresolvable city")
}

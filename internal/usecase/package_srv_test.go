package usecase

import (
	"context"
	"testing"
	"time"

	"gym-booking/internal/data/entity"
	"gym-booking/internal/data/repository"
	"gym-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePackageRepo struct {
	packages map[uuid.UUID]*entity.Package
}

func newFakePackageRepo(packages ...*entity.Package) *fakePackageRepo {
	f := &fakePackageRepo{packages: make(map[uuid.UUID]*entity.Package)}
	for _, pkg := range packages {
		f.packages[pkg.ID] = pkg
	}
	return f
}

func (f *fakePackageRepo) Create(ctx context.Context, pkg *entity.Package) error {
	f.packages[pkg.ID] = pkg
	return nil
}

func (f *fakePackageRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	return f.packages[id], nil
}

func (f *fakePackageRepo) FindAllActive(ctx context.Context) ([]*entity.Package, error) {
	var out []*entity.Package
	for _, pkg := range f.packages {
		if pkg.IsActive {
			out = append(out, pkg)
		}
	}
	return out, nil
}

func (f *fakePackageRepo) FindAllWithMemberCounts(ctx context.Context) ([]*repository.PackageWithMemberCount, error) {
	var out []*repository.PackageWithMemberCount
	for _, pkg := range f.packages {
		out = append(out, &repository.PackageWithMemberCount{Package: *pkg})
	}
	return out, nil
}

func (f *fakePackageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.packages, id)
	return nil
}

func monthlyPackage(durationDays int) *entity.Package {
	return &entity.Package{
		BaseSimple:   entity.BaseSimple{ID: uuid.New(), CreatedAt: testNow},
		Name:         "Monthly",
		Price:        300000,
		DurationDays: durationDays,
		IsActive:     true,
	}
}

func newTestPackageService(packages *fakePackageRepo, membership *fakeMembershipRepo, at time.Time) *packageService {
	return &packageService{
		packages:   packages,
		membership: membership,
		log:        zap.NewNop(),
		now:        func() time.Time { return at },
	}
}

func TestSubscribe_WindowMath(t *testing.T) {
	// 30 hari dari 1 Januari berakhir 31 Januari, bukan 1 Februari
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	pkg := monthlyPackage(30)
	userID := uuid.New()
	membership := &fakeMembershipRepo{}
	svc := newTestPackageService(newFakePackageRepo(pkg), membership, start)

	sub, err := svc.Subscribe(context.Background(), userID.String(), &request.SubscribeRequest{PackageID: pkg.ID.String()})

	require.NoError(t, err)
	assert.Equal(t, start, sub.StartDate)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), sub.EndDate)

	// snapshot nama dan harga ikut tersimpan
	assert.Equal(t, "Monthly", sub.Name)
	assert.Equal(t, 300000.0, sub.Price)
}

func TestSubscribe_RejectsOverlap(t *testing.T) {
	pkg := monthlyPackage(30)
	userID := uuid.New()
	membership := &fakeMembershipRepo{}
	svc := newTestPackageService(newFakePackageRepo(pkg), membership, testNow)

	_, err := svc.Subscribe(context.Background(), userID.String(), &request.SubscribeRequest{PackageID: pkg.ID.String()})
	require.NoError(t, err)

	_, err = svc.Subscribe(context.Background(), userID.String(), &request.SubscribeRequest{PackageID: pkg.ID.String()})
	assert.ErrorIs(t, err, ErrActiveSubscription)
	assert.Len(t, membership.subscriptions, 1)
}

func TestSubscribe_AllowedAfterExpiry(t *testing.T) {
	pkg := monthlyPackage(30)
	userID := uuid.New()

	expired := activeMembership(userID)
	expired.StartDate = testNow.AddDate(0, 0, -60)
	expired.EndDate = testNow.AddDate(0, 0, -30)

	membership := &fakeMembershipRepo{subscriptions: []*entity.MemberPackage{expired}}
	svc := newTestPackageService(newFakePackageRepo(pkg), membership, testNow)

	_, err := svc.Subscribe(context.Background(), userID.String(), &request.SubscribeRequest{PackageID: pkg.ID.String()})
	require.NoError(t, err)
}

func TestSubscribe_PackageUnavailable(t *testing.T) {
	userID := uuid.New()

	t.Run("package does not exist", func(t *testing.T) {
		svc := newTestPackageService(newFakePackageRepo(), &fakeMembershipRepo{}, testNow)
		_, err := svc.Subscribe(context.Background(), userID.String(), &request.SubscribeRequest{PackageID: uuid.New().String()})
		assert.ErrorIs(t, err, ErrPackageUnavailable)
	})

	t.Run("package inactive", func(t *testing.T) {
		pkg := monthlyPackage(30)
		pkg.IsActive = false
		svc := newTestPackageService(newFakePackageRepo(pkg), &fakeMembershipRepo{}, testNow)
		_, err := svc.Subscribe(context.Background(), userID.String(), &request.SubscribeRequest{PackageID: pkg.ID.String()})
		assert.ErrorIs(t, err, ErrPackageUnavailable)
	})
}

func TestGetMyActiveSubscription_NoneIsNotError(t *testing.T) {
	svc := newTestPackageService(newFakePackageRepo(), &fakeMembershipRepo{}, testNow)

	sub, err := svc.GetMyActiveSubscription(context.Background(), uuid.New().String())

	require.NoError(t, err)
	assert.Nil(t, sub)
}

func TestGetSubscriptionHistory(t *testing.T) {
	userID := uuid.New()
	old := activeMembership(userID)
	old.StartDate = testNow.AddDate(0, 0, -90)
	old.EndDate = testNow.AddDate(0, 0, -60)
	current := activeMembership(userID)

	membership := &fakeMembershipRepo{subscriptions: []*entity.MemberPackage{old, current}}
	svc := newTestPackageService(newFakePackageRepo(), membership, testNow)

	history, err := svc.GetSubscriptionHistory(context.Background(), userID.String())

	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestCreatePackage(t *testing.T) {
	packages := newFakePackageRepo()
	svc := newTestPackageService(packages, &fakeMembershipRepo{}, testNow)

	resp, err := svc.CreatePackage(context.Background(), &request.CreatePackageRequest{
		Name:         "Quarterly",
		Price:        800000,
		DurationDays: 90,
	})

	require.NoError(t, err)
	assert.True(t, resp.IsActive, "new packages must be purchasable immediately")
	assert.Equal(t, 90, resp.DurationDays)
	assert.Len(t, packages.packages, 1)
}

func TestCreatePackage_Invalid(t *testing.T) {
	svc := newTestPackageService(newFakePackageRepo(), &fakeMembershipRepo{}, testNow)

	_, err := svc.CreatePackage(context.Background(), &request.CreatePackageRequest{
		Name:         "X",
		Price:        -5,
		DurationDays: 0,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

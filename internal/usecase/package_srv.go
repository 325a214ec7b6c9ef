package usecase

import (
	"context"
	"fmt"
	"time"

	"gym-booking/internal/data/entity"
	"gym-booking/internal/data/repository"
	"gym-booking/internal/dto/request"
	"gym-booking/internal/dto/response"
	"gym-booking/pkg/metrics"
	"gym-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PackageService interface {
	GetActivePackages(ctx context.Context) ([]response.PackageResponse, error)
	GetAllPackages(ctx context.Context) ([]response.PackageResponse, error)
	CreatePackage(ctx context.Context, req *request.CreatePackageRequest) (*response.PackageResponse, error)
	DeletePackage(ctx context.Context, packageID string) error

	Subscribe(ctx context.Context, userID string, req *request.SubscribeRequest) (*response.SubscriptionResponse, error)
	GetMyActiveSubscription(ctx context.Context, userID string) (*response.SubscriptionResponse, error)
	GetSubscriptionHistory(ctx context.Context, userID string) ([]response.SubscriptionResponse, error)
}

type packageService struct {
	packages   repository.PackageRepository
	membership repository.MembershipRepository
	log        *zap.Logger

	now func() time.Time
}

func NewPackageService(
	packages repository.PackageRepository,
	membership repository.MembershipRepository,
	log *zap.Logger,
) PackageService {
	return &packageService{
		packages:   packages,
		membership: membership,
		log:        log.With(zap.String("service", "package")),
		now:        time.Now,
	}
}

func (s *packageService) GetActivePackages(ctx context.Context) ([]response.PackageResponse, error) {
	packages, err := s.packages.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active packages: %w", err)
	}

	responses := make([]response.PackageResponse, len(packages))
	for i, pkg := range packages {
		responses[i] = response.PackageToResponse(pkg)
	}
	return responses, nil
}

func (s *packageService) GetAllPackages(ctx context.Context) ([]response.PackageResponse, error) {
	packages, err := s.packages.FindAllWithMemberCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all packages: %w", err)
	}

	responses := make([]response.PackageResponse, len(packages))
	for i, pkg := range packages {
		resp := response.PackageToResponse(&pkg.Package)
		count := pkg.MemberCount
		resp.MemberCount = &count
		responses[i] = resp
	}
	return responses, nil
}

func (s *packageService) CreatePackage(ctx context.Context, req *request.CreatePackageRequest) (*response.PackageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create package validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	pkg := &entity.Package{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		Name:         req.Name,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		Description:  req.Description,
		IsActive:     true, // package baru langsung bisa dibeli
	}

	if err := s.packages.Create(ctx, pkg); err != nil {
		s.log.Error("Failed to create package", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create package: %w", err)
	}

	s.log.Info("Package created",
		zap.String("package_id", pkg.ID.String()),
		zap.String("name", pkg.Name),
	)

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

func (s *packageService) DeletePackage(ctx context.Context, packageID string) error {
	id, err := uuid.Parse(packageID)
	if err != nil {
		return fmt.Errorf("%w: invalid package ID", ErrInvalidInput)
	}

	if err := s.packages.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete package", zap.Error(err), zap.String("package_id", packageID))
		return fmt.Errorf("delete package %s: %w", packageID, err)
	}

	return nil
}

// Subscribe mengecek ulang tidak ada subscription yang masih aktif sebelum
// insert. Cek-lalu-insert di sini best-effort, tanpa lock seperti jalur
// booking: balapan terburuk menghasilkan satu row subscription dobel,
// bukan kursi kejual melebihi kapasitas, jadi tidak sebanding dengan
// ongkos serialisasi penuh.
func (s *packageService) Subscribe(ctx context.Context, userID string, req *request.SubscribeRequest) (*response.SubscriptionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Subscribe validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrInvalidInput)
	}

	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid package ID", ErrInvalidInput)
	}

	pkg, err := s.packages.FindByID(ctx, packageID)
	if err != nil {
		s.log.Error("Failed to find package", zap.Error(err), zap.String("package_id", req.PackageID))
		return nil, fmt.Errorf("find package: %w", err)
	}
	if pkg == nil || !pkg.IsActive {
		return nil, ErrPackageUnavailable
	}

	now := s.now()

	existing, err := s.membership.FindActive(ctx, userUUID, now)
	if err != nil {
		s.log.Error("Failed to check existing subscription",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("check existing subscription: %w", err)
	}
	if existing != nil {
		return nil, ErrActiveSubscription
	}

	// Snapshot nama dan harga — edit katalog setelah ini tidak
	// mengubah apa yang sudah dibeli member
	mp := &entity.MemberPackage{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    userUUID,
		PackageID: pkg.ID,
		Name:      pkg.Name,
		Price:     pkg.Price,
		StartDate: now,
		EndDate:   now.AddDate(0, 0, pkg.DurationDays),
	}

	if err := s.membership.Create(ctx, mp); err != nil {
		s.log.Error("Failed to create subscription",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("package_id", req.PackageID),
		)
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	s.log.Info("Subscription created",
		zap.String("subscription_id", mp.ID.String()),
		zap.String("user_id", userID),
		zap.String("package", pkg.Name),
		zap.Time("start_date", mp.StartDate),
		zap.Time("end_date", mp.EndDate),
	)
	metrics.RecordSubscription()

	resp := response.SubscriptionToResponse(mp)
	return &resp, nil
}

func (s *packageService) GetMyActiveSubscription(ctx context.Context, userID string) (*response.SubscriptionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrInvalidInput)
	}

	mp, err := s.membership.FindActive(ctx, userUUID, s.now())
	if err != nil {
		return nil, fmt.Errorf("get active subscription: %w", err)
	}
	if mp == nil {
		// Tanpa subscription aktif bukan error — frontend dapat null
		return nil, nil
	}

	resp := response.SubscriptionToResponse(mp)
	return &resp, nil
}

func (s *packageService) GetSubscriptionHistory(ctx context.Context, userID string) ([]response.SubscriptionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrInvalidInput)
	}

	history, err := s.membership.FindHistory(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("get subscription history: %w", err)
	}

	responses := make([]response.SubscriptionResponse, len(history))
	for i, mp := range history {
		responses[i] = response.SubscriptionToResponse(mp)
	}
	return responses, nil
}

package commands

//go:generate mockgen -source=temp_product.go -destination=../../../tests/mock/commands/temp_product_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"frame-pricing/internal/domain/pricing"
	"frame-pricing/internal/domain/tempproduct"
	"frame-pricing/internal/pkg/clock"
	"frame-pricing/internal/pkg/errs"
	"frame-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const sweepLockPrefix = "temp-products:sweep:"

type Options struct {
	TTL time.Duration
}

func DefaultOptions() Options {
	return Options{TTL: tempproduct.DefaultTTL}
}

type ProvisionRequest struct {
	Shop     string
	Height   int
	Width    int
	Material string
	ImageURL string
}

type ProvisionResult struct {
	Record    *tempproduct.Record
	Title     string
	Price     decimal.Decimal
	Outcome   tempproduct.Outcome
	PublicURL string
	CartItem  tempproduct.CartItem
}

type SweepReport struct {
	Shop         string
	DeletedCount int
	FailedCount  int
	Errors       []shared.DeleteFailure
}

// ShopSweepReport is one shop's outcome inside SweepAll. Err is set when the
// shop could not be swept at all.
type ShopSweepReport struct {
	Shop   string
	Report *SweepReport
	Err    error
}

type TempProductCommands interface {
	ProvisionOrReuse(ctx context.Context, req ProvisionRequest, admin shared.AdminAPI) (*ProvisionResult, error)
	SweepExpired(ctx context.Context, shop string, admin shared.AdminAPI) (*SweepReport, error)
	SweepShop(ctx context.Context, shop string) (*SweepReport, error)
	SweepAll(ctx context.Context) ([]ShopSweepReport, error)
}

type tempProductUseCaseImpl struct {
	calc     pricing.PriceCalculator
	ledger   shared.TempProductLedger
	gateway  shared.ProductGateway
	sessions shared.SessionProvider
	locker   shared.SweepLocker
	clock    clock.Clock
	opts     Options
	sweeps   singleflight.Group
}

func NewTempProductUseCase(
	calc pricing.PriceCalculator,
	ledger shared.TempProductLedger,
	gateway shared.ProductGateway,
	sessions shared.SessionProvider,
	locker shared.SweepLocker,
	clk clock.Clock,
	opts Options,
) TempProductCommands {
	if opts.TTL <= 0 {
		opts.TTL = tempproduct.DefaultTTL
	}
	return &tempProductUseCaseImpl{
		calc:     calc,
		ledger:   ledger,
		gateway:  gateway,
		sessions: sessions,
		locker:   locker,
		clock:    clk,
		opts:     opts,
	}
}

func (uc *tempProductUseCaseImpl) ProvisionOrReuse(ctx context.Context, req ProvisionRequest, admin shared.AdminAPI) (*ProvisionResult, error) {
	spec, err := uc.calc.NewDimensionSpec(req.Height, req.Width, req.Material)
	if err != nil {
		return nil, err
	}

	price := uc.calc.Price(spec.Height(), spec.Width(), spec.Material())
	title := tempproduct.Title(spec)
	now := uc.clock.Now()

	existing, err := uc.ledger.FindActive(ctx, req.Shop, spec, now)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		slog.Info("reusing temporary product",
			"shop", req.Shop,
			"product_id", existing.ProductID(),
			"delete_at", existing.DeleteAt())
		return &ProvisionResult{
			Record:   existing,
			Title:    title,
			Price:    price,
			Outcome:  tempproduct.OutcomeReused,
			CartItem: tempproduct.NewCartItem(existing.VariantID(), 1, spec),
		}, nil
	}

	remote, err := uc.gateway.CreateProduct(ctx, admin, shared.CreateProductInput{
		Spec:            spec,
		Price:           price,
		Title:           title,
		DescriptionHTML: tempproduct.DescriptionHTML(spec, price),
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	newRec, err := tempproduct.NewRecordFor(req.Shop, remote.ProductID, remote.VariantID, spec, price, now, uc.opts.TTL)
	if err != nil {
		return nil, errs.Wrap(err, "build temp product record")
	}

	rec, err := uc.ledger.Insert(ctx, newRec)
	if err != nil {
		// No compensation: the remote product stays until someone removes it by hand.
		slog.Error("temporary product created remotely but not recorded",
			"shop", req.Shop,
			"product_id", remote.ProductID,
			"variant_id", remote.VariantID,
			"error", err)
		return nil, errs.Mark(err, errs.ErrStore)
	}

	slog.Info("temporary product created",
		"shop", req.Shop,
		"product_id", rec.ProductID(),
		"price", pricing.FormatPrice(price),
		"delete_at", rec.DeleteAt())

	return &ProvisionResult{
		Record:    rec,
		Title:     remote.Title,
		Price:     price,
		Outcome:   tempproduct.OutcomeCreated,
		PublicURL: remote.PublicURL,
		CartItem:  tempproduct.NewCartItem(rec.VariantID(), 1, spec),
	}, nil
}

// SweepExpired deletes expired remote products for shop and flags only the
// successfully deleted ones. Failed ids stay pending for the next run.
func (uc *tempProductUseCaseImpl) SweepExpired(ctx context.Context, shop string, admin shared.AdminAPI) (*SweepReport, error) {
	expired, err := uc.ledger.FindExpired(ctx, shop, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	report := &SweepReport{Shop: shop, Errors: []shared.DeleteFailure{}}
	if len(expired) == 0 {
		return report, nil
	}

	productIDs := make([]string, 0, len(expired))
	for _, rec := range expired {
		productIDs = append(productIDs, rec.ProductID())
	}

	result := uc.gateway.BulkDelete(ctx, admin, productIDs)

	succeeded := make(map[string]struct{}, len(result.Succeeded))
	for _, id := range result.Succeeded {
		succeeded[id] = struct{}{}
	}
	toMark := make([]uuid.UUID, 0, len(result.Succeeded))
	for _, rec := range expired {
		if _, ok := succeeded[rec.ProductID()]; ok {
			toMark = append(toMark, rec.ID())
		}
	}

	if len(toMark) > 0 {
		marked, err := uc.ledger.MarkDeleted(ctx, toMark)
		if err != nil {
			slog.Error("remote products deleted but ledger not updated",
				"shop", shop,
				"count", len(toMark),
				"error", err)
			return nil, errs.Mark(err, errs.ErrStore)
		}
		if int(marked) != len(toMark) {
			slog.Warn("ledger marked fewer records than deleted remotely",
				"shop", shop,
				"expected", len(toMark),
				"marked", marked)
		}
	}

	report.DeletedCount = len(result.Succeeded)
	report.FailedCount = len(result.Failed)
	report.Errors = append(report.Errors, result.Failed...)

	slog.Info("temporary product sweep finished",
		"shop", shop,
		"expired", len(expired),
		"deleted", report.DeletedCount,
		"failed", report.FailedCount)

	return report, nil
}

// SweepShop resolves the shop's session and sweeps it, at most once at a time.
func (uc *tempProductUseCaseImpl) SweepShop(ctx context.Context, shop string) (*SweepReport, error) {
	v, err, joined := uc.sweeps.Do(shop, func() (any, error) {
		return uc.sweepLocked(ctx, shop)
	})
	if joined {
		slog.Debug("joined in-flight sweep", "shop", shop)
	}
	if err != nil {
		return nil, err
	}
	return v.(*SweepReport), nil
}

func (uc *tempProductUseCaseImpl) sweepLocked(ctx context.Context, shop string) (*SweepReport, error) {
	release, acquired, err := uc.locker.TryLock(ctx, sweepLockPrefix+shop)
	if err != nil {
		return nil, errs.Wrap(err, "acquire sweep lock")
	}
	if !acquired {
		return nil, errs.Mark(errs.Newf("sweep for %s held elsewhere", shop), errs.ErrSweepInProgress)
	}
	defer release(context.WithoutCancel(ctx))

	session, err := uc.sessions.ForShop(ctx, shop)
	if err != nil {
		return nil, err
	}
	return uc.SweepExpired(ctx, shop, session.Admin)
}

func (uc *tempProductUseCaseImpl) SweepAll(ctx context.Context) ([]ShopSweepReport, error) {
	shops, err := uc.ledger.ExpiredShops(ctx, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	reports := make([]ShopSweepReport, 0, len(shops))
	for _, shop := range shops {
		if ctx.Err() != nil {
			return reports, ctx.Err()
		}
		report, err := uc.SweepShop(ctx, shop)
		if err != nil {
			slog.Warn("shop sweep failed", "shop", shop, "error", err)
		}
		reports = append(reports, ShopSweepReport{Shop: shop, Report: report, Err: err})
	}
	return reports, nil
}

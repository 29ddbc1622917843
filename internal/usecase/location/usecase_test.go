package location

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "bizlend-backend/internal/domain/location"
	"bizlend-backend/internal/respond"
	"bizlend-backend/internal/store"
	"bizlend-backend/pkg/id"
)

func newUsecase(t *testing.T) (*Usecase, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Location{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return NewUsecase(db), db
}

func TestCreateAndGet_RoundTripsFactorGroups(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := context.Background()

	env := uc.Create(ctx, &domain.Location{
		Name:           "Jakarta",
		GovernmentType: domain.GovernmentDemocracy,
		Economic: domain.EconomicFactors{
			BaseCurrency:      "IDR",
			EconomicStability: domain.LevelMedium,
			MarketDemand:      map[string]float64{"retail": 0.8},
			TaxRate:           0.11,
		},
		Security: domain.Security{CrimeRate: domain.LevelLow, SecurityCosts: 1200},
	})
	if env.Code != respond.CodeCreated {
		t.Fatalf("code = %d (%q)", env.Code, env.Message)
	}
	created := env.Data.(*domain.Location)

	got := uc.GetByID(ctx, created.ID).Data.(*domain.Location)
	if got.Economic.BaseCurrency != "IDR" || got.Economic.MarketDemand["retail"] != 0.8 {
		t.Errorf("economic factors lost: %+v", got.Economic)
	}
	if got.Security.SecurityCosts != 1200 {
		t.Errorf("security factors lost: %+v", got.Security)
	}
}

func TestList_PaginatesLiveLocations(t *testing.T) {
	uc, db := newUsecase(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		db.Create(&domain.Location{ID: id.NewID24(), Name: "Live"})
	}
	db.Create(&domain.Location{ID: id.NewID24(), Name: "Gone", IsDeleted: true})

	env := uc.List(ctx, 1, 10)
	if env.Code != respond.CodeSuccess || env.Message != MsgLocationsFound {
		t.Fatalf("code=%d message=%q", env.Code, env.Message)
	}
	page := env.Data.(store.Page[domain.Location])
	if page.TotalCount != 3 || len(page.Items) != 3 {
		t.Errorf("total=%d items=%d, want 3/3", page.TotalCount, len(page.Items))
	}
}

func TestUpdate_ReplacesFactorGroupWholesale(t *testing.T) {
	uc, db := newUsecase(t)
	ctx := context.Background()

	loc := &domain.Location{
		ID:   id.NewID24(),
		Name: "Bandung",
		Legal: domain.LegalEnvironment{
			BusinessRegulations: []string{"permit-a", "permit-b"},
			CorruptionLevel:     domain.LevelHigh,
		},
	}
	db.Create(loc)

	env := uc.Update(ctx, loc.ID, func(cur *domain.Location) {
		cur.Legal = domain.LegalEnvironment{CorruptionLevel: domain.LevelLow}
	})
	if env.Code != respond.CodeSuccess {
		t.Fatalf("code = %d (%q)", env.Code, env.Message)
	}
	got := env.Data.(*domain.Location)
	if got.Legal.CorruptionLevel != domain.LevelLow {
		t.Error("factor group not replaced")
	}
	if len(got.Legal.BusinessRegulations) != 0 {
		t.Error("old regulations survived a wholesale replace")
	}
	if env := uc.Update(ctx, id.NewID24(), nil); env.Message != MsgLocationNotFound {
		t.Errorf("absent: message = %q", env.Message)
	}
}

package user

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bizlend-backend/internal/auth"
	"bizlend-backend/internal/domain/authorization"
	"bizlend-backend/internal/domain/location"
	domain "bizlend-backend/internal/domain/user"
	"bizlend-backend/internal/respond"
	"bizlend-backend/pkg/id"
)

func newUsecase(t *testing.T) (*Usecase, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &authorization.Authorization{}, &location.Location{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return NewUsecase(db, auth.NewTokenService("test-secret")), db
}

func TestRegister_CreatesUserAndAuthorization(t *testing.T) {
	uc, db := newUsecase(t)
	ctx := context.Background()

	env := uc.Register(ctx, RegisterInput{
		SubID:   "google-sub-1",
		Email:   "ana@example.com",
		Name:    "Ana",
		Channel: "google",
	})
	if env.Code != respond.CodeCreated {
		t.Fatalf("code = %d, want 201 (%q)", env.Code, env.Message)
	}
	created, ok := env.Data.(*domain.User)
	if !ok {
		t.Fatalf("data type = %T", env.Data)
	}
	if !id.Valid(created.ID) {
		t.Errorf("id %q is not a 24-hex id", created.ID)
	}
	if created.Token == "" {
		t.Error("token not issued")
	}
	if created.ReferralCode == "" {
		t.Error("referral code not generated")
	}
	if created.Role != domain.RoleOwner {
		t.Errorf("role = %q, want owner", created.Role)
	}

	var authz authorization.Authorization
	if err := db.First(&authz, "user_id = ?", created.ID).Error; err != nil {
		t.Fatalf("authorization record: %v", err)
	}
	if authz.Token != created.Token {
		t.Error("authorization token differs from user token")
	}
}

func TestRegister_IdempotentOnSubID(t *testing.T) {
	uc, db := newUsecase(t)
	ctx := context.Background()

	first := uc.Register(ctx, RegisterInput{SubID: "sub-7", Email: "b@example.com", Name: "B", Channel: "apple"})
	if first.Code != respond.CodeCreated {
		t.Fatalf("first register code = %d", first.Code)
	}
	second := uc.Register(ctx, RegisterInput{SubID: "sub-7", Email: "b@example.com", Name: "B", Channel: "apple"})
	if second.Code != respond.CodeSuccess {
		t.Fatalf("second register code = %d, want 200", second.Code)
	}
	if second.Message != MsgUserExists {
		t.Errorf("message = %q", second.Message)
	}
	got := second.Data.(*domain.User)
	want := first.Data.(*domain.User)
	if got.ID != want.ID {
		t.Errorf("returned user %q, want existing %q", got.ID, want.ID)
	}

	var count int64
	db.Model(&domain.User{}).Count(&count)
	if count != 1 {
		t.Errorf("user rows = %d, want 1", count)
	}
}

func TestGetByID_ThreeOutcomes(t *testing.T) {
	uc, db := newUsecase(t)
	ctx := context.Background()

	if env := uc.GetByID(ctx, id.NewID24()); env.Code != respond.CodeNotFound || env.Message != MsgUserNotFound {
		t.Errorf("absent: code=%d message=%q", env.Code, env.Message)
	}

	live := &domain.User{ID: id.NewID24(), Name: "Live"}
	gone := &domain.User{ID: id.NewID24(), Name: "Gone", IsDeleted: true}
	db.Create(live)
	db.Create(gone)

	if env := uc.GetByID(ctx, live.ID); env.Code != respond.CodeSuccess {
		t.Errorf("live: code=%d", env.Code)
	}
	if env := uc.GetByID(ctx, gone.ID); env.Message != MsgUserDeleted {
		t.Errorf("deleted: message=%q", env.Message)
	}
}

func TestUpdateProfile_PatchesOnlyProvidedFields(t *testing.T) {
	uc, db := newUsecase(t)
	ctx := context.Background()

	u := &domain.User{ID: id.NewID24(), Name: "Old", Email: "old@example.com", PIN: "1234"}
	db.Create(u)

	env := uc.UpdateProfile(ctx, u.ID, UpdateInput{Name: "New"})
	if env.Code != respond.CodeSuccess {
		t.Fatalf("code = %d (%q)", env.Code, env.Message)
	}
	got := env.Data.(*domain.User)
	if got.Name != "New" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Email != "old@example.com" || got.PIN != "1234" {
		t.Errorf("untouched fields changed: email=%q pin=%q", got.Email, got.PIN)
	}
}

func TestChooseLocation(t *testing.T) {
	uc, db := newUsecase(t)
	ctx := context.Background()

	u := &domain.User{ID: id.NewID24(), Name: "Picker"}
	db.Create(u)

	if env := uc.ChooseLocation(ctx, u.ID, id.NewID24()); env.Code != respond.CodeNotFound {
		t.Fatalf("unknown location: code = %d", env.Code)
	}

	loc := &location.Location{ID: id.NewID24(), Name: "Jakarta"}
	db.Create(loc)

	dead := &location.Location{ID: id.NewID24(), Name: "Atlantis", IsDeleted: true}
	db.Create(dead)
	if env := uc.ChooseLocation(ctx, u.ID, dead.ID); env.Message != MsgLocDeleted {
		t.Fatalf("deleted location: message = %q", env.Message)
	}

	env := uc.ChooseLocation(ctx, u.ID, loc.ID)
	if env.Code != respond.CodeSuccess || env.Message != MsgLocationChosen {
		t.Fatalf("code=%d message=%q", env.Code, env.Message)
	}
	if env.Data.(*domain.User).ChosenLocationID != loc.ID {
		t.Error("chosen location not persisted")
	}
}

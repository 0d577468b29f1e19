package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/models"
)

type badgeStoreStub struct {
	mints      map[string]models.BadgeMint
	pointsMint *models.PointsMint
}

func newBadgeStoreStub() *badgeStoreStub {
	return &badgeStoreStub{mints: make(map[string]models.BadgeMint)}
}

func badgeKey(walletAddress string, badgeID string) string {
	return walletAddress + "/" + badgeID
}

func (stub *badgeStoreStub) FindMint(walletAddress string, badgeID string) (models.BadgeMint, bool, error) {
	mint, ok := stub.mints[badgeKey(walletAddress, badgeID)]
	return mint, ok, nil
}

func (stub *badgeStoreStub) RecordMint(mint *models.BadgeMint) (bool, error) {
	key := badgeKey(mint.WalletAddress, mint.BadgeID)
	if _, exists := stub.mints[key]; exists {
		return false, nil
	}
	stub.mints[key] = *mint
	return true, nil
}

func (stub *badgeStoreStub) ListByWallet(walletAddress string) ([]models.BadgeMint, error) {
	list := make([]models.BadgeMint, 0)
	for _, mint := range stub.mints {
		if mint.WalletAddress == walletAddress {
			list = append(list, mint)
		}
	}
	return list, nil
}

func (stub *badgeStoreStub) CreatePointsMint(mint *models.PointsMint) error {
	copied := *mint
	stub.pointsMint = &copied
	return nil
}

func (stub *badgeStoreStub) FindPointsMint(mintAddress string) (models.PointsMint, bool, error) {
	if stub.pointsMint != nil && stub.pointsMint.MintAddress == mintAddress {
		return *stub.pointsMint, true, nil
	}
	return models.PointsMint{}, false, nil
}

type badgeUserStub struct {
	user models.User
}

func (stub *badgeUserStub) FindByID(userID uint) (models.User, error) {
	return stub.user, nil
}

func TestMintCycleBadgeRequiresUnlock(t *testing.T) {
	users := &badgeUserStub{user: models.User{ID: 1, WalletAddress: "wallet-1"}}
	service := NewBadgeService(users, newBadgeStoreStub(), &settlementStub{})

	if _, err := service.MintCycleBadge(context.Background(), 1, "", time.Now()); !errors.Is(err, ErrBadgeLocked) {
		t.Fatalf("expected ErrBadgeLocked, got %v", err)
	}
}

func TestMintCycleBadgeIsIdempotentPerWallet(t *testing.T) {
	users := &badgeUserStub{user: models.User{ID: 1, WalletAddress: "wallet-1", CycleBadgeUnlocked: true}}
	settle := &settlementStub{}
	service := NewBadgeService(users, newBadgeStoreStub(), settle)

	first, err := service.MintCycleBadge(context.Background(), 1, "", time.Now())
	if err != nil {
		t.Fatalf("first mint unexpected error: %v", err)
	}
	if first.BadgeID != models.BadgeCycleGuardian || first.Signature == "" {
		t.Fatalf("first mint = %+v", first)
	}

	second, err := service.MintCycleBadge(context.Background(), 1, "", time.Now())
	if err != nil {
		t.Fatalf("second mint unexpected error: %v", err)
	}
	if second.Signature != first.Signature {
		t.Fatalf("repeat mint returned a new receipt: %q vs %q", second.Signature, first.Signature)
	}
	if settle.mintCalls != 1 {
		t.Fatalf("settlement mint called %d times, want 1", settle.mintCalls)
	}
}

func TestMintCycleBadgeNeedsAWallet(t *testing.T) {
	users := &badgeUserStub{user: models.User{ID: 1, CycleBadgeUnlocked: true}}
	service := NewBadgeService(users, newBadgeStoreStub(), &settlementStub{})

	if _, err := service.MintCycleBadge(context.Background(), 1, "", time.Now()); !errors.Is(err, ErrUserWalletNeeded) {
		t.Fatalf("expected ErrUserWalletNeeded, got %v", err)
	}
}

func TestLookupMintRequiresLocalRecord(t *testing.T) {
	store := newBadgeStoreStub()
	service := NewBadgeService(&badgeUserStub{}, store, &settlementStub{})

	if _, err := service.LookupMint(context.Background(), "unknown"); !errors.Is(err, ErrMintNotFound) {
		t.Fatalf("expected ErrMintNotFound, got %v", err)
	}

	created, err := service.CreatePointsMint(context.Background(), "authority", time.Now())
	if err != nil {
		t.Fatalf("CreatePointsMint() unexpected error: %v", err)
	}

	info, err := service.LookupMint(context.Background(), created.MintAddress)
	if err != nil {
		t.Fatalf("LookupMint() unexpected error: %v", err)
	}
	if info.MintAddress != created.MintAddress {
		t.Fatalf("lookup returned %q, want %q", info.MintAddress, created.MintAddress)
	}
}

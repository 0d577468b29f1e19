package services

import (
	"context"
	"errors"
	"time"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/models"
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/settlement"
)

var (
	ErrBadgeLocked      = errors.New("cycle badge is not unlocked yet")
	ErrMintNotFound     = errors.New("points mint not found")
	ErrUserWalletNeeded = errors.New("user has no wallet address")
)

type BadgeUserReader interface {
	FindByID(userID uint) (models.User, error)
}

type BadgeMintStore interface {
	FindMint(walletAddress string, badgeID string) (models.BadgeMint, bool, error)
	RecordMint(mint *models.BadgeMint) (bool, error)
	ListByWallet(walletAddress string) ([]models.BadgeMint, error)
	CreatePointsMint(mint *models.PointsMint) error
	FindPointsMint(mintAddress string) (models.PointsMint, bool, error)
}

type BadgeService struct {
	users  BadgeUserReader
	badges BadgeMintStore
	settle settlement.Service
}

func NewBadgeService(users BadgeUserReader, badges BadgeMintStore, settle settlement.Service) *BadgeService {
	return &BadgeService{users: users, badges: badges, settle: settle}
}

// MintCycleBadge settles the cycle badge for a wallet. The local unlock
// flag must already be set, and one badge exists per (wallet, badge):
// repeated mint requests return the original receipt.
func (service *BadgeService) MintCycleBadge(ctx context.Context, userID uint, walletAddress string, now time.Time) (models.BadgeMint, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.BadgeMint{}, err
	}
	if !user.CycleBadgeUnlocked {
		return models.BadgeMint{}, ErrBadgeLocked
	}
	if walletAddress == "" {
		walletAddress = user.WalletAddress
	}
	if walletAddress == "" {
		return models.BadgeMint{}, ErrUserWalletNeeded
	}

	existing, found, err := service.badges.FindMint(walletAddress, models.BadgeCycleGuardian)
	if err != nil {
		return models.BadgeMint{}, err
	}
	if found {
		return existing, nil
	}

	receipt, err := service.settle.MintBadge(ctx, walletAddress, models.BadgeCycleGuardian)
	if err != nil {
		return models.BadgeMint{}, errors.Join(ErrSettlementFailed, err)
	}

	mint := models.BadgeMint{
		WalletAddress: walletAddress,
		BadgeID:       models.BadgeCycleGuardian,
		Signature:     receipt.Signature,
		ExplorerURL:   receipt.ExplorerURL,
		AwardedAt:     now,
	}
	if _, err := service.badges.RecordMint(&mint); err != nil {
		return models.BadgeMint{}, err
	}
	return mint, nil
}

func (service *BadgeService) ListBadges(walletAddress string) ([]models.BadgeMint, error) {
	return service.badges.ListByWallet(walletAddress)
}

// CreatePointsMint provisions the fungible token mint that mirrors point
// balances on chain and records its address locally.
func (service *BadgeService) CreatePointsMint(ctx context.Context, authority string, now time.Time) (models.PointsMint, error) {
	info, err := service.settle.CreatePointsMint(ctx, authority)
	if err != nil {
		return models.PointsMint{}, errors.Join(ErrSettlementFailed, err)
	}

	mint := models.PointsMint{
		MintAddress: info.MintAddress,
		Authority:   authority,
		CreatedAt:   now,
	}
	if err := service.badges.CreatePointsMint(&mint); err != nil {
		return models.PointsMint{}, err
	}
	return mint, nil
}

func (service *BadgeService) LookupMint(ctx context.Context, mintAddress string) (settlement.MintInfo, error) {
	if _, found, err := service.badges.FindPointsMint(mintAddress); err != nil {
		return settlement.MintInfo{}, err
	} else if !found {
		return settlement.MintInfo{}, ErrMintNotFound
	}

	info, err := service.settle.LookupMint(ctx, mintAddress)
	if err != nil {
		return settlement.MintInfo{}, errors.Join(ErrSettlementFailed, err)
	}
	return info, nil
}

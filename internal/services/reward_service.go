package services

import (
	"context"
	"errors"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/settlement"
)

var (
	ErrInvalidRedeemCost = errors.New("redeem cost must be positive")
	ErrSettlementFailed  = errors.New("settlement failed")
)

type RewardUserReader interface {
	PointsBalance(userID uint) (int64, error)
	WalletFor(userID uint) (string, error)
}

type RewardLedger interface {
	AddPoints(userID uint, delta int64) error
	Balance(userID uint) (int64, error)
}

type RewardService struct {
	ledger RewardLedger
	users  RewardUserReader
	settle settlement.Service
}

func NewRewardService(ledger RewardLedger, users RewardUserReader, settle settlement.Service) *RewardService {
	return &RewardService{ledger: ledger, users: users, settle: settle}
}

type RedeemResult struct {
	Signature string `json:"signature"`
	Balance   int64  `json:"balance"`
}

// Redeem burns cost points against the user's wallet with a
// reserve-then-confirm flow: the balance is debited first (rejected
// atomically if insufficient), the remote burn runs, and a failed burn
// refunds the reservation so the caller never loses points to a network
// error.
func (service *RewardService) Redeem(ctx context.Context, userID uint, cost int64) (RedeemResult, error) {
	if cost <= 0 {
		return RedeemResult{}, ErrInvalidRedeemCost
	}

	walletAddress, err := service.users.WalletFor(userID)
	if err != nil {
		return RedeemResult{}, err
	}
	if walletAddress == "" {
		return RedeemResult{}, ErrMissingWallet
	}

	if err := service.ledger.AddPoints(userID, -cost); err != nil {
		return RedeemResult{}, err
	}

	receipt, err := service.settle.BurnPoints(ctx, walletAddress, cost)
	if err != nil {
		if refundErr := service.ledger.AddPoints(userID, cost); refundErr != nil {
			return RedeemResult{}, errors.Join(ErrSettlementFailed, err, refundErr)
		}
		return RedeemResult{}, errors.Join(ErrSettlementFailed, err)
	}

	balance, err := service.ledger.Balance(userID)
	if err != nil {
		return RedeemResult{Signature: receipt.Signature}, err
	}
	return RedeemResult{Signature: receipt.Signature, Balance: balance}, nil
}

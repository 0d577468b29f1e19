// Package settlement talks to the token-issuance service that mirrors
// points and badges on chain. The rest of the app treats it as an opaque
// remote collaborator: local ledger state is always settled first, and a
// failed remote call never corrupts it.
package settlement

import (
	"context"
	"errors"
)

var (
	ErrUnavailable = errors.New("settlement service unavailable")
	ErrBadResponse = errors.New("settlement service returned an unexpected response")
)

type MintReceipt struct {
	Signature   string `json:"signature"`
	ExplorerURL string `json:"explorer_url"`
}

type BurnReceipt struct {
	Signature string `json:"signature"`
}

type MintInfo struct {
	MintAddress string `json:"mint_address"`
	Authority   string `json:"authority"`
	Supply      int64  `json:"supply"`
}

type Service interface {
	MintBadge(ctx context.Context, walletAddress string, badgeID string) (MintReceipt, error)
	BurnPoints(ctx context.Context, walletAddress string, amount int64) (BurnReceipt, error)
	CreatePointsMint(ctx context.Context, authority string) (MintInfo, error)
	LookupMint(ctx context.Context, mintAddress string) (MintInfo, error)
}

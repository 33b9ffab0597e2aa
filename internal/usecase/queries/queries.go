package queries

import (
	"context"
	"time"

	"asset-factory/internal/infra"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/amount"
	"asset-factory/internal/pkg/errs"
	"asset-factory/internal/usecase/shared"
)

//go:generate mockgen -source=queries.go -destination=../../../tests/mock/queries/queries.go -package=queriesmock

// Reader runs a read-only unit. *shared.Executor implements it.
type Reader interface {
	Read(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error
}

type ProgramQueries interface {
	GetProtocol(ctx context.Context) (*ProtocolView, error)
	GetAdmin(ctx context.Context, identity address.Address) (*AdminView, error)
	GetCollection(ctx context.Context, owner address.Address) (*CollectionView, error)
	GetReservation(ctx context.Context, owner address.Address, id uint64) (*ReservationView, error)
	GetAsset(ctx context.Context, owner address.Address, id uint64) (*AssetView, error)
}

type LedgerQueries interface {
	Balance(ctx context.Context, addr address.Address) (*BalanceView, error)
	TokenBalance(ctx context.Context, owner, mint address.Address) (*TokenBalanceView, error)
}

type queriesImpl struct {
	reader Reader
}

func NewProgramQueries(reader Reader) ProgramQueries {
	return &queriesImpl{reader: reader}
}

func NewLedgerQueries(reader Reader) LedgerQueries {
	return &queriesImpl{reader: reader}
}

func (q *queriesImpl) GetProtocol(ctx context.Context) (*ProtocolView, error) {
	var view *ProtocolView
	err := q.reader.Read(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Protocol().Get(ctx)
		if err != nil {
			return notFound(err, "protocol is not initialized")
		}
		view = &ProtocolView{Address: address.Protocol().String(), Locked: p.Locked()}
		return nil
	})
	return view, err
}

func (q *queriesImpl) GetAdmin(ctx context.Context, identity address.Address) (*AdminView, error) {
	var view *AdminView
	err := q.reader.Read(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Admins().Get(ctx, identity)
		if err != nil {
			return notFound(err, "admin "+identity.String())
		}
		addr := address.Admin(identity)
		lamports, err := tx.Ledger().Balance(ctx, addr)
		if err != nil {
			return err
		}
		view = &AdminView{
			Address:   addr.String(),
			Identity:  a.Identity().String(),
			Username:  a.Username(),
			CreatedAt: a.CreatedAt(),
			Deposit:   a.Deposit(),
			Lamports:  lamports,
		}
		return nil
	})
	return view, err
}

func (q *queriesImpl) GetCollection(ctx context.Context, owner address.Address) (*CollectionView, error) {
	var view *CollectionView
	err := q.reader.Read(ctx, func(ctx context.Context, tx shared.Tx) error {
		col, err := tx.Collections().Get(ctx, owner)
		if err != nil {
			return notFound(err, "collection of "+owner.String())
		}
		view = &CollectionView{
			Address:     address.Collection(owner).String(),
			Owner:       col.Owner().String(),
			Name:        col.Name(),
			Symbol:      col.Symbol(),
			Reference:   col.Reference(),
			Price:       col.Price(),
			SaleStart:   col.SaleStart(),
			SaleEnd:     col.SaleEnd(),
			MaxSupply:   col.MaxSupply(),
			TotalSupply: col.TotalSupply(),
		}
		for _, a := range col.AllowList() {
			view.AllowList = append(view.AllowList, a.String())
		}
		return nil
	})
	return view, err
}

func (q *queriesImpl) GetReservation(ctx context.Context, owner address.Address, id uint64) (*ReservationView, error) {
	var view *ReservationView
	err := q.reader.Read(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().Get(ctx, address.Collection(owner), id)
		if err != nil {
			return notFound(err, "reservation")
		}
		info, err := tx.Ledger().MintInfo(ctx, res.Mint())
		if err != nil {
			return err
		}
		view = &ReservationView{
			Address:     res.Address().String(),
			ID:          res.ID(),
			Collection:  res.Collection().String(),
			Name:        res.Name(),
			Reference:   res.Reference(),
			Price:       res.Price(),
			CreatedAt:   res.CreatedAt(),
			Status:      string(res.Status()),
			Settled:     res.IsCompleted() || (info.Supply == 1 && info.Revoked()),
			Buyer:       optionalAddress(res.Buyer()),
			CompletedAt: optionalTime(res.CompletedAt()),
			Mint:        mintView(info),
		}
		return nil
	})
	return view, err
}

func (q *queriesImpl) GetAsset(ctx context.Context, owner address.Address, id uint64) (*AssetView, error) {
	var view *AssetView
	err := q.reader.Read(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Assets().Get(ctx, address.Collection(owner), id)
		if err != nil {
			return notFound(err, "asset")
		}
		info, err := tx.Ledger().MintInfo(ctx, a.Mint())
		if err != nil {
			return err
		}
		view = &AssetView{
			Address:     a.Address().String(),
			ID:          a.ID(),
			Collection:  a.Collection().String(),
			Name:        a.Name(),
			URI:         a.URI(),
			Price:       a.Price(),
			Rank:        a.Rank(),
			CreatedAt:   a.CreatedAt(),
			Status:      string(a.Status()),
			Buyer:       optionalAddress(a.Buyer()),
			CompletedAt: optionalTime(a.CompletedAt()),
			Mint:        mintView(info),
		}
		for _, at := range a.Attributes() {
			view.Attributes = append(view.Attributes, AttributeView{Key: at.Key, Value: at.Value})
		}
		return nil
	})
	return view, err
}

func (q *queriesImpl) Balance(ctx context.Context, addr address.Address) (*BalanceView, error) {
	var view *BalanceView
	err := q.reader.Read(ctx, func(ctx context.Context, tx shared.Tx) error {
		lamports, err := tx.Ledger().Balance(ctx, addr)
		if err != nil {
			return err
		}
		view = &BalanceView{Address: addr.String(), Lamports: lamports, Units: amount.Units(lamports)}
		return nil
	})
	return view, err
}

func (q *queriesImpl) TokenBalance(ctx context.Context, owner, mint address.Address) (*TokenBalanceView, error) {
	var view *TokenBalanceView
	err := q.reader.Read(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Ledger().TokenBalance(ctx, owner, mint)
		if err != nil {
			return err
		}
		view = &TokenBalanceView{
			Owner:        owner.String(),
			Mint:         mint.String(),
			TokenAccount: address.TokenAccount(owner, mint).String(),
			Amount:       n,
		}
		return nil
	})
	return view, err
}

func notFound(err error, what string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Reject(errs.ErrNotFound, "%s", what)
	}
	return err
}

func mintView(m *shared.MintInfo) MintView {
	return MintView{
		Address:           m.Address.String(),
		MintAuthority:     optionalString(m.MintAuthority),
		FreezeAuthority:   optionalString(m.FreezeAuthority),
		CloseAuthority:    optionalString(m.CloseAuthority),
		PermanentDelegate: optionalString(m.PermanentDelegate),
		Supply:            m.Supply,
		Name:              m.Metadata.Name,
		Symbol:            m.Metadata.Symbol,
		URI:               m.Metadata.URI,
		Additional:        m.Metadata.Additional,
	}
}

func optionalString(a address.Address) string {
	if a.IsZero() {
		return ""
	}
	return a.String()
}

func optionalAddress(a address.Address) *string {
	if a.IsZero() {
		return nil
	}
	s := a.String()
	return &s
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

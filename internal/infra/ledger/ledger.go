package ledger

import (
	"context"
	"math"

	"asset-factory/internal/domain/authority"
	"asset-factory/internal/infra"
	"asset-factory/internal/infra/repository"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/errs"
	"asset-factory/internal/usecase/shared"

	"github.com/vmihailenco/msgpack/v5"
)

// Ledger is the in-process token program. It shares the caller's transaction
// so every primitive commits or rolls back with the unit that invoked it.
type Ledger struct {
	q      repository.AccountQueries
	issuer *authority.Issuer
}

func New(q repository.AccountQueries, issuer *authority.Issuer) *Ledger {
	return &Ledger{q: q, issuer: issuer}
}

var _ shared.TokenLedger = (*Ledger)(nil)

func (l *Ledger) CreateMint(ctx context.Context, payer authority.Signer, spec shared.MintSpec) error {
	if spec.Address.IsZero() {
		return errs.Reject(errs.ErrInvalidArgument, "mint address is empty")
	}
	if !l.issuer.Authorizes(payer, spec.Payer) {
		return errs.Reject(errs.ErrAuthorityMismatch, "payer %s did not sign", spec.Payer)
	}
	existing, err := l.get(ctx, spec.Address)
	if err != nil {
		return err
	}
	if existing != nil {
		return errs.Reject(errs.ErrAccountExists, "mint %s", spec.Address)
	}
	return l.put(ctx, &repository.Account{Address: spec.Address, Kind: repository.KindMint}, mintFromSpec(spec))
}

func (l *Ledger) CreateTokenAccount(ctx context.Context, payer authority.Signer, owner, mint address.Address) (address.Address, error) {
	if payer == nil || !l.issuer.Authorizes(payer, payer.Address()) {
		return address.Zero, errs.Reject(errs.ErrAuthorityMismatch, "token account payer did not sign")
	}
	if _, _, err := l.loadMint(ctx, mint); err != nil {
		return address.Zero, err
	}
	addr := address.TokenAccount(owner, mint)
	existing, err := l.get(ctx, addr)
	if err != nil {
		return address.Zero, err
	}
	if existing != nil {
		if existing.Kind != repository.KindTokenAccount {
			return address.Zero, errs.Reject(errs.ErrAccountExists, "address %s is a %s", addr, existing.Kind)
		}
		return addr, nil
	}
	rec := tokenAccountRecord{Owner: owner, Mint: mint}
	if err := l.put(ctx, &repository.Account{Address: addr, Kind: repository.KindTokenAccount}, rec); err != nil {
		return address.Zero, err
	}
	return addr, nil
}

func (l *Ledger) MintTo(ctx context.Context, auth authority.Signer, mint, owner address.Address, amount uint64) error {
	mintAcc, m, err := l.loadMint(ctx, mint)
	if err != nil {
		return err
	}
	if m.MintAuthority.IsZero() {
		return errs.Reject(errs.ErrAuthorityRevoked, "mint %s", mint)
	}
	if !l.issuer.Authorizes(auth, m.MintAuthority) {
		return errs.Reject(errs.ErrAuthorityMismatch, "mint authority of %s", mint)
	}
	tokAcc, tok, err := l.loadTokenAccount(ctx, owner, mint)
	if err != nil {
		return err
	}
	if m.Supply > math.MaxUint64-amount {
		return errs.Reject(errs.ErrInvalidArgument, "supply overflow on %s", mint)
	}
	m.Supply += amount
	tok.Amount += amount
	if err := l.put(ctx, mintAcc, m); err != nil {
		return err
	}
	return l.put(ctx, tokAcc, tok)
}

func (l *Ledger) Burn(ctx context.Context, auth authority.Signer, mint, owner address.Address, amount uint64) error {
	mintAcc, m, err := l.loadMint(ctx, mint)
	if err != nil {
		return err
	}
	tokAcc, tok, err := l.loadTokenAccount(ctx, owner, mint)
	if err != nil {
		return err
	}
	delegated := !m.PermanentDelegate.IsZero() && l.issuer.Authorizes(auth, m.PermanentDelegate)
	if !delegated && !l.issuer.Authorizes(auth, owner) {
		return errs.Reject(errs.ErrAuthorityMismatch, "burn on %s", mint)
	}
	if tok.Amount < amount {
		return errs.Reject(errs.ErrInsufficientTokens, "holder %s has %d of %s", owner, tok.Amount, mint)
	}
	tok.Amount -= amount
	m.Supply -= amount
	if err := l.put(ctx, mintAcc, m); err != nil {
		return err
	}
	return l.put(ctx, tokAcc, tok)
}

func (l *Ledger) SetMintAuthority(ctx context.Context, auth authority.Signer, mint, next address.Address) error {
	mintAcc, m, err := l.loadMint(ctx, mint)
	if err != nil {
		return err
	}
	if m.MintAuthority.IsZero() {
		return errs.Reject(errs.ErrAuthorityRevoked, "mint %s", mint)
	}
	if !l.issuer.Authorizes(auth, m.MintAuthority) {
		return errs.Reject(errs.ErrAuthorityMismatch, "mint authority of %s", mint)
	}
	m.MintAuthority = next
	return l.put(ctx, mintAcc, m)
}

func (l *Ledger) Transfer(ctx context.Context, from authority.Signer, to address.Address, lamports uint64) error {
	if from == nil || !l.issuer.Authorizes(from, from.Address()) {
		return errs.Reject(errs.ErrAuthorityMismatch, "transfer source did not sign")
	}
	if lamports == 0 {
		return nil
	}
	src, err := l.get(ctx, from.Address())
	if err != nil {
		return err
	}
	if src == nil || src.Lamports < lamports {
		var have uint64
		if src != nil {
			have = src.Lamports
		}
		return errs.Reject(errs.ErrInsufficientFunds, "%s has %d, needs %d", from.Address(), have, lamports)
	}
	if from.Address() == to {
		return nil
	}
	src.Lamports -= lamports
	if err := l.q.Put(ctx, src); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to debit account", err)
	}
	return l.credit(ctx, to, lamports)
}

func (l *Ledger) CloseRecord(ctx context.Context, program authority.Program, record, dest address.Address) (uint64, error) {
	if !l.issuer.Owns(program) {
		return 0, errs.Reject(errs.ErrAuthorityMismatch, "close requires the program authority")
	}
	acc, err := l.get(ctx, record)
	if err != nil {
		return 0, err
	}
	if acc == nil {
		return 0, errs.Reject(errs.ErrAccountMissing, "record %s", record)
	}
	if !acc.Kind.ProgramOwned() {
		return 0, errs.Reject(errs.ErrAuthorityMismatch, "%s is not program owned", record)
	}
	if err := l.q.Delete(ctx, record); err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to delete record", err)
	}
	if err := l.credit(ctx, dest, acc.Lamports); err != nil {
		return 0, err
	}
	return acc.Lamports, nil
}

func (l *Ledger) Deposit(ctx context.Context, to address.Address, lamports uint64) error {
	return l.credit(ctx, to, lamports)
}

func (l *Ledger) Balance(ctx context.Context, addr address.Address) (uint64, error) {
	acc, err := l.get(ctx, addr)
	if err != nil || acc == nil {
		return 0, err
	}
	return acc.Lamports, nil
}

func (l *Ledger) TokenBalance(ctx context.Context, owner, mint address.Address) (uint64, error) {
	acc, err := l.get(ctx, address.TokenAccount(owner, mint))
	if err != nil || acc == nil {
		return 0, err
	}
	var tok tokenAccountRecord
	if err := msgpack.Unmarshal(acc.Data, &tok); err != nil {
		return 0, infra.WrapRepoErr(infra.KindDecodeFailure, "failed to decode token account", err)
	}
	return tok.Amount, nil
}

func (l *Ledger) MintInfo(ctx context.Context, mint address.Address) (*shared.MintInfo, error) {
	_, m, err := l.loadMint(ctx, mint)
	if err != nil {
		return nil, err
	}
	return m.info(mint), nil
}

func (l *Ledger) credit(ctx context.Context, to address.Address, lamports uint64) error {
	if lamports == 0 {
		return nil
	}
	dst, err := l.get(ctx, to)
	if err != nil {
		return err
	}
	if dst == nil {
		dst = &repository.Account{Address: to, Kind: repository.KindWallet}
	}
	if dst.Lamports > math.MaxUint64-lamports {
		return errs.Reject(errs.ErrInvalidArgument, "balance overflow on %s", to)
	}
	dst.Lamports += lamports
	if err := l.q.Put(ctx, dst); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to credit account", err)
	}
	return nil
}

func (l *Ledger) get(ctx context.Context, addr address.Address) (*repository.Account, error) {
	acc, err := l.q.Get(ctx, addr)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read ledger account", err)
	}
	return acc, nil
}

func (l *Ledger) put(ctx context.Context, acc *repository.Account, rec any) error {
	data, err := msgpack.Marshal(rec)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDecodeFailure, "failed to encode ledger account", err)
	}
	acc.Data = data
	if err := l.q.Put(ctx, acc); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to write ledger account", err)
	}
	return nil
}

func (l *Ledger) loadMint(ctx context.Context, mint address.Address) (*repository.Account, *mintRecord, error) {
	acc, err := l.get(ctx, mint)
	if err != nil {
		return nil, nil, err
	}
	if acc == nil || acc.Kind != repository.KindMint {
		return nil, nil, errs.Reject(errs.ErrAccountMissing, "mint %s", mint)
	}
	var m mintRecord
	if err := msgpack.Unmarshal(acc.Data, &m); err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindDecodeFailure, "failed to decode mint", err)
	}
	return acc, &m, nil
}

func (l *Ledger) loadTokenAccount(ctx context.Context, owner, mint address.Address) (*repository.Account, *tokenAccountRecord, error) {
	addr := address.TokenAccount(owner, mint)
	acc, err := l.get(ctx, addr)
	if err != nil {
		return nil, nil, err
	}
	if acc == nil || acc.Kind != repository.KindTokenAccount {
		return nil, nil, errs.Reject(errs.ErrAccountMissing, "token account %s", addr)
	}
	var tok tokenAccountRecord
	if err := msgpack.Unmarshal(acc.Data, &tok); err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindDecodeFailure, "failed to decode token account", err)
	}
	return acc, &tok, nil
}

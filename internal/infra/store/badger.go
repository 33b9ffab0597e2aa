package store

import (
	"context"
	"errors"

	"asset-factory/internal/infra/repository"
	"asset-factory/internal/pkg/address"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"
)

const prefixAccount = "acct:"

type envelope struct {
	Kind     string `msgpack:"k"`
	Lamports uint64 `msgpack:"l"`
	Data     []byte `msgpack:"d"`
}

// BadgerAccounts reads and writes accounts inside one badger transaction.
type BadgerAccounts struct {
	txn *badger.Txn
}

func NewBadgerAccounts(txn *badger.Txn) *BadgerAccounts {
	return &BadgerAccounts{txn: txn}
}

func accountKey(addr address.Address) []byte {
	return append([]byte(prefixAccount), addr[:]...)
}

func (s *BadgerAccounts) Get(_ context.Context, addr address.Address) (*repository.Account, error) {
	item, err := s.txn.Get(accountKey(addr))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := msgpack.Unmarshal(val, &env); err != nil {
		return nil, err
	}
	return &repository.Account{
		Address:  addr,
		Kind:     repository.AccountKind(env.Kind),
		Lamports: env.Lamports,
		Data:     env.Data,
	}, nil
}

func (s *BadgerAccounts) Put(_ context.Context, acc *repository.Account) error {
	val, err := msgpack.Marshal(envelope{
		Kind:     string(acc.Kind),
		Lamports: acc.Lamports,
		Data:     acc.Data,
	})
	if err != nil {
		return err
	}
	return s.txn.Set(accountKey(acc.Address), val)
}

func (s *BadgerAccounts) Delete(_ context.Context, addr address.Address) error {
	return s.txn.Delete(accountKey(addr))
}

func OpenBadger(path string, inMemory bool) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	return badger.Open(opts)
}

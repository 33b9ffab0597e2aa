package address

const (
	TagProtocol     = "protocol"
	TagAdmin        = "admin_state"
	TagCollection   = "collection"
	TagPlaceholder  = "placeholder"
	TagAsset        = "ainft"
	TagMint         = "mint"
	TagAuthority    = "auth"
	TagTokenAccount = "token_account"
	TagGrantNonce   = "grant_nonce"
)

func Protocol() Address {
	return Derive(TagProtocol)
}

func Admin(identity Address) Address {
	return Derive(TagAdmin, identity[:])
}

func Collection(owner Address) Address {
	return Derive(TagCollection, owner[:])
}

func Reservation(collection Address, id uint64) Address {
	return Derive(TagPlaceholder, collection[:], LE64(id))
}

func Asset(collection Address, id uint64) Address {
	return Derive(TagAsset, collection[:], LE64(id))
}

// Mint is the mint paired with a reservation or asset record.
func Mint(record Address) Address {
	return Derive(TagMint, record[:])
}

// Authority is the keyless program authority. No private key exists for it.
func Authority() Address {
	return Derive(TagAuthority)
}

func TokenAccount(owner, mint Address) Address {
	return Derive(TagTokenAccount, owner[:], mint[:])
}

func GrantNonce(signer Address, nonce uint64) Address {
	return Derive(TagGrantNonce, signer[:], LE64(nonce))
}

package protocol

import "asset-factory/internal/pkg/errs"

// Protocol is the singleton gate in front of every mutating operation.
type Protocol struct {
	locked bool
}

func NewProtocol() *Protocol {
	return &Protocol{}
}

func ReconstructProtocol(locked bool) *Protocol {
	return &Protocol{locked: locked}
}

func (p *Protocol) SetLocked(locked bool) {
	p.locked = locked
}

func (p *Protocol) EnsureUnlocked() error {
	if p.locked {
		return errs.ErrProtocolLocked
	}
	return nil
}

func (p *Protocol) Locked() bool { return p.locked }

package transition

import (
	"errors"

	"turismo_xpto/internal/domain/entities"
)

// Transition identifies a guarded state change on an operator cost.
type Transition string

const (
	Approve Transition = "APPROVE"
	Lock    Transition = "LOCK"
	Unlock  Transition = "UNLOCK"
	Update  Transition = "UPDATE"
)

var (
	ErrAlreadyLocked = errors.New("operator cost already locked")
	ErrAlreadyPaid   = errors.New("operator cost already paid")
	ErrNotLocked     = errors.New("operator cost not locked")
	ErrForbidden     = errors.New("role not allowed for this transition")
	ErrUnknown       = errors.New("unknown transition")
)

// rule is one row of the transition table: who may request the transition and
// what the loaded record state must look like. All permission checks live in
// this table; handlers and usecases never branch on roles inline.
type rule struct {
	allowed func(entities.Role) bool
	state   func(entities.OperatorCost) error
}

func anyCostRole(r entities.Role) bool {
	switch r {
	case entities.RoleAdmin, entities.RoleSeller, entities.RoleOperator, entities.RoleAccountant:
		return true
	}
	return false
}

func adminOnly(r entities.Role) bool { return r == entities.RoleAdmin }

// Locked state wins over payment state: approving a locked-but-unpaid record
// fails with ErrAlreadyLocked, never ErrAlreadyPaid.
var rules = map[Transition]rule{
	Approve: {
		allowed: anyCostRole,
		state: func(c entities.OperatorCost) error {
			if c.Lock.IsLocked() {
				return ErrAlreadyLocked
			}
			if c.PaymentStatus == entities.PaymentStatusPaid {
				return ErrAlreadyPaid
			}
			return nil
		},
	},
	Lock: {
		allowed: anyCostRole,
		state: func(c entities.OperatorCost) error {
			if c.Lock.IsLocked() {
				return ErrAlreadyLocked
			}
			return nil
		},
	},
	Unlock: {
		allowed: adminOnly,
		state: func(c entities.OperatorCost) error {
			if !c.Lock.IsLocked() {
				return ErrNotLocked
			}
			return nil
		},
	},
	Update: {
		allowed: anyCostRole,
		state: func(c entities.OperatorCost) error {
			if c.Lock.IsLocked() {
				return ErrAlreadyLocked
			}
			return nil
		},
	},
}

// Allowed reports whether the role may request the transition at all,
// independent of record state. Used to reject privileged transitions before
// the record is even loaded.
func Allowed(tr Transition, role entities.Role) bool {
	r, ok := rules[tr]
	if !ok {
		return false
	}
	return r.allowed(role)
}

// Check validates the requested transition against the loaded record state and
// the caller's role. Pure decision logic, no side effects.
func Check(c entities.OperatorCost, tr Transition, role entities.Role) error {
	r, ok := rules[tr]
	if !ok {
		return ErrUnknown
	}
	if !r.allowed(role) {
		return ErrForbidden
	}
	return r.state(c)
}

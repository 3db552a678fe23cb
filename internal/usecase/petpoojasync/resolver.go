package petpoojasync

import "github.com/LavaJover/petpooja-sync-service/internal/domain/petpooja"

type RefKind string

const (
	RefCategory   RefKind = "category"
	RefAddonGroup RefKind = "addon_group"
	RefAttribute  RefKind = "attribute"
)

// Resolver maps vendor ids to the internal ids written earlier in the same
// pass. It is never shared between passes.
type Resolver struct {
	refs   map[RefKind]map[petpooja.ID]string
	misses map[RefKind]int
}

func NewResolver() *Resolver {
	return &Resolver{
		refs:   make(map[RefKind]map[petpooja.ID]string),
		misses: make(map[RefKind]int),
	}
}

func (r *Resolver) Record(kind RefKind, vendorID petpooja.ID, id string) {
	m, ok := r.refs[kind]
	if !ok {
		m = make(map[petpooja.ID]string)
		r.refs[kind] = m
	}
	m[vendorID] = id
}

// Resolve returns the internal id for vendorID. An empty or "0" reference is
// not a miss: it resolves to nil with ok set. An unknown reference resolves
// to nil with ok unset and is counted.
func (r *Resolver) Resolve(kind RefKind, vendorID petpooja.ID) (id *string, ok bool) {
	if vendorID.IsZero() {
		return nil, true
	}
	if v, found := r.refs[kind][vendorID]; found {
		return &v, true
	}
	r.misses[kind]++
	return nil, false
}

func (r *Resolver) Misses(kind RefKind) int {
	return r.misses[kind]
}

// TotalMisses sums the misses of every kind.
func (r *Resolver) TotalMisses() int {
	total := 0
	for _, n := range r.misses {
		total += n
	}
	return total
}

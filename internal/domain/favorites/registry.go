package favorites

import "sort"

// Registry es el FavoriteMap de una sesión: product id -> favorito.
type Registry struct {
	m map[int]bool
}

// NewRegistry copia el estado inicial; seed no queda referenciado.
func NewRegistry(seed map[int]bool) Registry {
	m := make(map[int]bool, len(seed))
	for id, v := range seed {
		m[id] = v
	}
	return Registry{m: m}
}

// Toggle invierte el valor de id y deja el resto igual.
// Un id desconocido arranca en false, así que queda en true.
func (r Registry) Toggle(id int) bool {
	r.m[id] = !r.m[id]
	return r.m[id]
}

func (r Registry) IsFavorite(id int) bool {
	return r.m[id]
}

// IDs devuelve los favoritos activos, ordenados.
func (r Registry) IDs() []int {
	out := make([]int, 0, len(r.m))
	for id, v := range r.m {
		if v {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}

// Snapshot devuelve una copia del mapa completo (para persistir).
func (r Registry) Snapshot() map[int]bool {
	out := make(map[int]bool, len(r.m))
	for id, v := range r.m {
		out[id] = v
	}
	return out
}

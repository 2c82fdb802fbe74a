// Package search implementa el filtro de subcadena insensible a mayúsculas que
// usan todas las pantallas con buscador.
package search

import "strings"

// Filter devuelve la subsecuencia de items cuyo conjunto de campos contiene
// query (case-folded). Conserva el orden original y no muta la fuente; query
// vacío es identidad. Los extractores deben sustituir campos opcionales
// ausentes por cadena vacía, nunca producir pánico.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

package repository

// PageQuery consulta paginada. Page es 1-based en toda la consola; el adaptador
// HTTP traduce a la convención de la API.
type PageQuery struct {
	Page     int
	PageSize int
	Search   string
}

// Normalize aplica valores por defecto.
func (q PageQuery) Normalize(defaultSize int) PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = defaultSize
	}
	return q
}

// Page resultado de un listado paginado.
type Page[T any] struct {
	Items      []T
	TotalCount int
}

// TotalPages número de páginas para el tamaño dado (mínimo 1).
func (p Page[T]) TotalPages(pageSize int) int {
	if pageSize <= 0 || p.TotalCount <= 0 {
		return 1
	}
	return (p.TotalCount + pageSize - 1) / pageSize
}

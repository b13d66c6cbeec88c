package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
)

func TestPageQuery_Normalize(t *testing.T) {
	q := repository.PageQuery{Page: 0, PageSize: 0, Search: "lap"}.Normalize(5)
	assert.Equal(t, repository.PageQuery{Page: 1, PageSize: 5, Search: "lap"}, q)

	q = repository.PageQuery{Page: 3, PageSize: 20}.Normalize(5)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 20, q.PageSize)
}

func TestPage_TotalPages(t *testing.T) {
	assert.Equal(t, 1, repository.Page[int]{TotalCount: 0}.TotalPages(5))
	assert.Equal(t, 1, repository.Page[int]{TotalCount: 5}.TotalPages(5))
	assert.Equal(t, 3, repository.Page[int]{TotalCount: 11}.TotalPages(5))
	assert.Equal(t, 1, repository.Page[int]{TotalCount: 11}.TotalPages(0))
}

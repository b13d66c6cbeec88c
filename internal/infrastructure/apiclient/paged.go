package apiclient

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
)

// Claves aceptadas en la envoltura paginada: cada recurso de la API usa una
// variante distinta ({data, totalCount} o {items, total}).
var (
	itemKeys  = []string{"data", "items", "Data", "Items"}
	totalKeys = []string{"totalCount", "total", "TotalCount", "Total"}
)

// decodePage decodifica una envoltura paginada y convierte cada fila. Si la
// API devuelve un arreglo plano, el total es su longitud.
func decodePage[W any, T any](raw []byte, convert func(W) T) (repository.Page[T], error) {
	if !gjson.ValidBytes(raw) {
		return repository.Page[T]{}, fmt.Errorf("apiclient: respuesta paginada inválida")
	}
	res := gjson.ParseBytes(raw)

	items := res
	if !res.IsArray() {
		items = gjson.Result{}
		for _, k := range itemKeys {
			if v := res.Get(k); v.Exists() && v.IsArray() {
				items = v
				break
			}
		}
	}

	var wire []W
	if items.Exists() {
		if err := json.Unmarshal([]byte(items.Raw), &wire); err != nil {
			return repository.Page[T]{}, fmt.Errorf("apiclient: decodificar filas: %w", err)
		}
	}

	page := repository.Page[T]{Items: make([]T, 0, len(wire)), TotalCount: len(wire)}
	for _, w := range wire {
		page.Items = append(page.Items, convert(w))
	}
	if !res.IsArray() {
		for _, k := range totalKeys {
			if v := res.Get(k); v.Exists() && v.Type == gjson.Number {
				page.TotalCount = int(v.Int())
				break
			}
		}
	}
	return page, nil
}

// decodeList decodifica un arreglo plano (o envuelto) y convierte cada fila.
func decodeList[W any, T any](raw []byte, convert func(W) T) ([]T, error) {
	page, err := decodePage(raw, convert)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

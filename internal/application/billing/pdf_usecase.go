package billing

import (
	"fmt"
	"time"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain"
)

// ProformaUseCase genera la proforma PDF del borrador actual (antes de enviarlo).
type ProformaUseCase struct {
	drafts    DraftSource
	generator ProformaPDFGenerator
	now       func() time.Time
}

// NewProformaUseCase construye el caso de uso.
func NewProformaUseCase(drafts DraftSource, generator ProformaPDFGenerator) *ProformaUseCase {
	return &ProformaUseCase{drafts: drafts, generator: generator, now: time.Now}
}

// Download devuelve el PDF y el nombre de archivo sugerido.
//
// Retorna domain.ErrEmptyOrder si el borrador no tiene líneas.
func (uc *ProformaUseCase) Download() (pdfBytes []byte, filename string, err error) {
	draft := uc.drafts.Snapshot()
	if draft.IsEmpty() {
		return nil, "", domain.ErrEmptyOrder
	}
	pdfBytes, err = uc.generator.Generate(draft)
	if err != nil {
		return nil, "", fmt.Errorf("proforma: generar PDF: %w", err)
	}
	filename = fmt.Sprintf("proforma-%s.pdf", uc.now().Format("20060102-150405"))
	return pdfBytes, filename, nil
}

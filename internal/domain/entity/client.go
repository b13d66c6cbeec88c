package entity

// Client cliente de la empresa (RUC + datos de contacto + país de registro).
type Client struct {
	ID          int64
	TaxID       string // RUC
	Name        string
	Email       string
	Phone       string
	Address     string
	CountryID   int64
	CountryName string // lo envía la API en los listados paginados; puede venir vacío
	Status      Status
}

// ClientInput datos editables de un cliente.
type ClientInput struct {
	TaxID     string
	Name      string
	Email     string
	Phone     string
	Address   string
	CountryID int64
}

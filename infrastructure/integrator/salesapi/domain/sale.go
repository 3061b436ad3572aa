package salesdomain

// Sale é o registro como chega da API de vendas. Campos obrigatórios são ponteiros
// para diferenciar ausência de valor zero.
type Sale struct {
	Product      string   `json:"Produto,omitempty"`
	Category     *string  `json:"Categoria do Produto,omitempty"`
	Price        *float64 `json:"Preço,omitempty"`
	Freight      float64  `json:"Frete,omitempty"`
	PurchaseDate *string  `json:"Data da Compra,omitempty"`
	Seller       *string  `json:"Vendedor,omitempty"`
	State        *string  `json:"Local da compra,omitempty"`
	Rating       int      `json:"Avaliação da compra,omitempty"`
	PaymentType  string   `json:"Tipo de pagamento,omitempty"`
	Installments int      `json:"Quantidade de parcelas,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lon          *float64 `json:"lon,omitempty"`
}

// Nomes dos campos obrigatórios, usados nas mensagens de validação
const (
	FieldPurchaseDate = "Data da Compra"
	FieldPrice        = "Preço"
	FieldCategory     = "Categoria do Produto"
	FieldSeller       = "Vendedor"
	FieldState        = "Local da compra"
	FieldLat          = "lat"
	FieldLon          = "lon"
)

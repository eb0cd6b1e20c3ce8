package payload

import (
	"testing"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullOrder = `{
  "id": 42,
  "createdAt": "2024-03-05T17:30:00Z",
  "preferredReadyTime": "2024-03-05T18:15:00Z",
  "type": "DELIVERY",
  "customer": {"id": 7, "firstName": "Marie", "lastName": "Dubois", "phoneNumber": "+32 470 12 34 56"},
  "payment": {"status": "PAYÉ"},
  "address": {"streetName": "Rue de la Loi", "houseNumber": "16", "boxNumber": "B", "postcode": "1000", "municipalityName": "Bruxelles"},
  "addressExtra": "Sonnette du haut",
  "items": [
    {"product": {"id": 1, "code": "A10", "name": "Gyoza", "category": {"id": 3, "name": "Entrées"}}, "quantity": 1, "unitPrice": 6.5, "totalPrice": 6.5},
    {"product": {"id": 2, "code": "A1", "name": "Edamame", "category": {"id": 3, "name": "Entrées"}}, "quantity": 2, "unitPrice": "6.00", "totalPrice": "12.00"}
  ]
}`

func newTestParser(mode SchemaMode) *Parser {
	return NewParser(mode, logger.NewNopLogger())
}

func TestParse_FullOrder(t *testing.T) {
	order, err := newTestParser(SchemaAuto).Parse(fullOrder)
	require.NoError(t, err)

	assert.Equal(t, "42", order.ID)
	assert.Equal(t, "7", order.Customer.ID)
	assert.Equal(t, "2024-03-05T17:30:00Z", order.CreatedAt)
	require.NotNil(t, order.PreferredReadyTime)
	assert.Equal(t, "2024-03-05T18:15:00Z", *order.PreferredReadyTime)
	assert.Equal(t, domain.OrderTypeDelivery, order.Type)
	assert.False(t, order.Legacy)

	assert.Equal(t, "Marie", order.Customer.FirstName)
	assert.Equal(t, "Dubois", order.Customer.LastName)
	require.NotNil(t, order.Customer.PhoneNumber)

	require.NotNil(t, order.Payment)
	assert.Equal(t, "PAYÉ", order.Payment.Status)

	require.NotNil(t, order.Address)
	assert.Equal(t, "Rue de la Loi", order.Address.StreetName)
	require.NotNil(t, order.Address.BoxNumber)
	assert.Equal(t, "B", *order.Address.BoxNumber)
	require.NotNil(t, order.AddressExtra)

	require.Len(t, order.Lines, 2)
	assert.Equal(t, "A10", order.Lines[0].Product.Code)
	assert.Equal(t, "Entrées", order.Lines[0].Product.Category.Name)
	assert.True(t, decimal.RequireFromString("6.5").Equal(order.Lines[0].TotalPrice))
	assert.True(t, decimal.RequireFromString("12").Equal(order.Lines[1].TotalPrice))
	assert.Equal(t, 2, order.Lines[1].Quantity)
	assert.True(t, decimal.RequireFromString("18.5").Equal(order.Total()))
}

func TestParse_StringIDs(t *testing.T) {
	content := `{
	  "id": "3f0c6a2e-8d4b-4c1e-9a57-2b1f6f0d9e11",
	  "type": "PICKUP",
	  "customer": {"id": "c-17", "firstName": "Lucas", "lastName": "Janssens"},
	  "items": [
	    {"product": {"id": "p1", "code": "S3", "name": "Maki", "category": {"id": "c1", "name": "Sushi"}}, "quantity": 2, "totalPrice": "9.00"}
	  ]
	}`

	order, err := newTestParser(SchemaOrder).Parse(content)
	require.NoError(t, err)

	assert.Equal(t, "3f0c6a2e-8d4b-4c1e-9a57-2b1f6f0d9e11", order.ID)
	assert.Equal(t, "c-17", order.Customer.ID)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, "p1", order.Lines[0].Product.ID)
	assert.Equal(t, "c1", order.Lines[0].Product.Category.ID)
	assert.Equal(t, 2, order.Lines[0].Quantity)
}

func TestParse_OptionalBlocksAbsent(t *testing.T) {
	order, err := newTestParser(SchemaOrder).Parse(`{"id": 1, "type": "PICKUP", "customer": {"firstName": "Tom", "lastName": "Peeters"}, "items": []}`)
	require.NoError(t, err)

	assert.Nil(t, order.Payment)
	assert.Nil(t, order.Address)
	assert.Nil(t, order.AddressExtra)
	assert.Nil(t, order.PreferredReadyTime)
	assert.Nil(t, order.Customer.PhoneNumber)
	assert.Empty(t, order.Lines)
}

func TestParse_LegacyList(t *testing.T) {
	content := `[
	  {"product": {"id": 1, "code": "B2", "name": "Ramen", "category": {"id": 1, "name": "Plats"}}, "quantity": 1, "totalPrice": 14}
	]`

	order, err := newTestParser(SchemaAuto).Parse(content)
	require.NoError(t, err)

	assert.True(t, order.Legacy)
	assert.Nil(t, order.Payment)
	assert.Nil(t, order.Address)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, "Ramen", order.Lines[0].Product.Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mode    SchemaMode
		content string
		wantMsg string
	}{
		{name: "blank", mode: SchemaAuto, content: "   \n", wantMsg: "empty content"},
		{name: "truncated", mode: SchemaAuto, content: `{"id": 1, "items": [`},
		{name: "not json", mode: SchemaAuto, content: `hello`, wantMsg: "unexpected payload start"},
		{name: "missing id", mode: SchemaAuto, content: `{"items": []}`, wantMsg: `"id"`},
		{name: "missing product", mode: SchemaAuto, content: `{"id": 1, "items": [{"quantity": 1}]}`, wantMsg: `"items[0].product"`},
		{name: "missing quantity", mode: SchemaAuto, content: `{"id": 1, "items": [{"product": {"id": 1}}, {"product": {"id": 2}}]}`, wantMsg: `"items[0].quantity"`},
		{name: "array in order mode", mode: SchemaOrder, content: `[]`, wantMsg: "array payload"},
		{name: "wrong id type", mode: SchemaAuto, content: `{"id": true}`, wantMsg: "string or a number"},
		{name: "null id", mode: SchemaAuto, content: `{"id": null, "items": []}`, wantMsg: `"id"`},
		{name: "legacy missing quantity", mode: SchemaAuto, content: `[{"product": {"id": 1}}]`, wantMsg: `"[0].quantity"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := newTestParser(tt.mode).Parse(tt.content)
			require.Error(t, err)
			assert.Nil(t, order)
			assert.ErrorIs(t, err, e.ErrParse)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParse_NonPositiveQuantityPassesThrough(t *testing.T) {
	order, err := newTestParser(SchemaAuto).Parse(`{"id": 5, "items": [{"product": {"id": 1, "name": "Thé"}, "quantity": 0, "totalPrice": 0}]}`)
	require.NoError(t, err)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, 0, order.Lines[0].Quantity)
}

func TestParseSchemaMode(t *testing.T) {
	mode, err := ParseSchemaMode("")
	require.NoError(t, err)
	assert.Equal(t, SchemaAuto, mode)

	mode, err = ParseSchemaMode("ORDER")
	require.NoError(t, err)
	assert.Equal(t, SchemaOrder, mode)

	_, err = ParseSchemaMode("v2")
	assert.Error(t, err)
}

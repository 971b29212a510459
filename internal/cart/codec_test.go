package cart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fashionhive/storefront/internal/domain"
	"github.com/fashionhive/storefront/internal/pricing"
)

func TestCodec_RoundTripIsLossless(t *testing.T) {
	p := domain.Product{
		ID:              "A",
		Name:            "Lawn Suit <3PC>",
		Price:           pricing.StringPrice("Rs.3,990"),
		ImageURLs:       []string{"https://cdn.example.com/a.jpg"},
		Category:        "Unstitched",
		Brand:           "Khaadi",
		BrandCollection: "Khaadi",
		NumericPrice:    3990,
		Sizes:           []string{"Standard"},
	}
	numeric := domain.Product{ID: "B", Price: pricing.NumberPrice(1500), Brand: "Sapphire"}
	state := mustReduce(EmptyState(),
		AddItem{Product: p, Quantity: 2, Size: "Standard", Color: "teal"},
		AddItem{Product: numeric, Quantity: 1, Size: "M"},
	)

	payload, err := Encode(state.Items())
	require.NoError(t, err)

	items, err := Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, state.Items(), items)
	assert.True(t, items[1].Product.Price.IsNumber())
}

func TestCodec_AcceptsBareArray(t *testing.T) {
	raw := `[{"productId":"A","product":{"_id":"A","name":"Kurta","price":"Rs.2,500","image_urls":[]},"quantity":1,"size":"M","color":"","numericPrice":2500,"brandCollection":"Khaadi"}]`

	items, err := Decode([]byte(raw))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Khaadi", items[0].BrandCollection)
	assert.Equal(t, 2500.0, items[0].Product.Price.Amount())
}

func TestCodec_EmptyPayload(t *testing.T) {
	items, err := Decode([]byte("  "))
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestCodec_RejectsCorruptPayloads(t *testing.T) {
	state := mustReduce(EmptyState(), AddItem{Product: product("A", "X", "100"), Quantity: 1, Size: "M"})
	payload, err := Encode(state.Items())
	require.NoError(t, err)

	tampered := bytes.Replace(payload, []byte(`"quantity":1`), []byte(`"quantity":9`), 1)
	require.NotEqual(t, payload, tampered)

	cases := map[string][]byte{
		"not json":      []byte("{not json"),
		"truncated":     payload[:len(payload)/2],
		"tampered":      tampered,
		"wrong version": []byte(`{"version":7,"checksum":"","items":[]}`),
		"bad array":     []byte(`[{"quantity":"many"}]`),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(data)
			assert.ErrorIs(t, err, ErrCorruptPayload)
		})
	}
}

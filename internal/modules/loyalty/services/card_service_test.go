package services

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCard(t *testing.T) {
	svc := NewCardService("https://tienda.mx/card")
	clientID := uuid.New()

	card, err := svc.GenerateCard(clientID)
	require.NoError(t, err)

	assert.Equal(t, clientID.String(), card.ClientID)
	assert.Equal(t, "https://tienda.mx/card/"+clientID.String(), card.CardCode)

	// The payload must be a decodable PNG
	raw, err := base64.StdEncoding.DecodeString(card.QRCodeB64)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestGenerateCardDefaultBaseURL(t *testing.T) {
	svc := NewCardService("")
	clientID := uuid.New()

	card, err := svc.GenerateCard(clientID)
	require.NoError(t, err)
	assert.Contains(t, card.CardCode, "loyalty://card/")
}

func TestGenerateCardPNGSizeClamp(t *testing.T) {
	svc := NewCardService("")
	clientID := uuid.New()

	for _, size := range []int{-1, 0, 5000} {
		data, err := svc.GenerateCardPNG(clientID, size)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
	}
}

package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// LoyaltyCard is a scannable membership card for a client
type LoyaltyCard struct {
	ClientID  string `json:"client_id"`
	CardCode  string `json:"card_code"`
	QRCodeB64 string `json:"qr_code_base64"` // PNG, base64 encoded
}

type CardService struct {
	baseURL string
}

// NewCardService creates a card service. baseURL is embedded in the QR
// payload so scanners resolve back to this deployment.
func NewCardService(baseURL string) *CardService {
	if baseURL == "" {
		baseURL = "loyalty://card"
	}
	return &CardService{baseURL: baseURL}
}

// GenerateCard builds the loyalty card QR for a client
func (s *CardService) GenerateCard(clientID uuid.UUID) (*LoyaltyCard, error) {
	cardCode := fmt.Sprintf("%s/%s", s.baseURL, clientID.String())

	img, err := qrcode.New(cardCode, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img.Image(256)); err != nil {
		return nil, fmt.Errorf("failed to encode QR image: %w", err)
	}

	return &LoyaltyCard{
		ClientID:  clientID.String(),
		CardCode:  cardCode,
		QRCodeB64: base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

// GenerateCardPNG builds the raw PNG bytes for direct image responses
func (s *CardService) GenerateCardPNG(clientID uuid.UUID, size int) ([]byte, error) {
	if size < 64 || size > 1024 {
		size = 256
	}

	cardCode := fmt.Sprintf("%s/%s", s.baseURL, clientID.String())
	data, err := qrcode.Encode(cardCode, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return data, nil
}

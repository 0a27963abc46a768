package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(businessID int64) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(businessID int64) ([]byte, error) {
	qrData := fmt.Sprintf("%s/menu.html?business_id=%d", g.BaseURL, businessID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

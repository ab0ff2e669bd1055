package pdfdoc

import (
	qrcode "github.com/skip2/go-qrcode"
)

// QRCode encodes text as a PNG image named after the content.
func QRCode(text string) (Image, error) {
	png, err := qrcode.Encode(text, qrcode.Medium, 256)
	if err != nil {
		return Image{}, err
	}
	return Image{Name: "qr-" + text, Type: "PNG", Data: png}, nil
}

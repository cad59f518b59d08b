package receipts

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"tourcab/models"
	"tourcab/utils"
)

// Signer signs and checks receipt QR payloads.
type Signer struct {
	Secret []byte
}

func (s Signer) sign(data string) string {
	h := hmac.New(sha256.New, s.Secret)
	h.Write([]byte(data))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// Payload returns bookingID|tourID|date|signature.
func (s Signer) Payload(b models.Booking) string {
	data := fmt.Sprintf("%s|%s|%s", b.ID, b.TourID, b.Date)
	return data + "|" + s.sign(data)
}

// Verify checks a payload and returns the booking id it was issued for.
func (s Signer) Verify(payload string) (string, error) {
	parts := strings.Split(payload, "|")
	if len(parts) != 4 {
		return "", goerrors.New("invalid receipt code", goerrors.CategoryBadInput).WithTextCode("BAD_RECEIPT")
	}
	data := strings.Join(parts[:3], "|")
	if !hmac.Equal([]byte(parts[3]), []byte(s.sign(data))) {
		return "", goerrors.New("receipt signature mismatch", goerrors.CategoryBadInput).WithTextCode("BAD_RECEIPT")
	}
	return parts[0], nil
}

func rupees(amount float64) string {
	// core PDF fonts have no rupee glyph
	return strings.Replace(utils.FormatINR(amount), "₹", "INR ", 1)
}

// Render builds the confirmation PDF for b with its signed QR code.
func (s Signer) Render(b models.Booking) ([]byte, error) {
	qrPNG, err := qrcode.Encode(s.Payload(b), qrcode.Medium, 256)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "generate QR code")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Confirmation")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	rows := [][2]string{
		{"Booking", b.ID},
		{"Tour", b.TourTitle},
		{"Date", b.Date},
		{"Guests", fmt.Sprintf("%d", b.Guests)},
		{"Total", rupees(b.TotalPrice)},
		{"Status", string(b.Status)},
		{"Name", b.CustomerName},
		{"Email", b.CustomerEmail},
		{"Phone", b.CustomerPhone},
	}
	for _, row := range rows {
		pdf.Cell(0, 10, fmt.Sprintf("%s: %s", row[0], row[1]))
		pdf.Ln(8)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "render PDF")
	}
	return buf.Bytes(), nil
}

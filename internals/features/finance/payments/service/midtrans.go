package service

import (
	"errors"
	"fmt"
	"os"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var SnapClient snap.Client

// InitMidtrans dipanggil sekali saat bootstrap. Sandbox kecuali
// APP_ENV=production.
func InitMidtrans(serverKey string) {
	env := midtrans.Sandbox
	if os.Getenv("APP_ENV") == "production" {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

type SnapOrder struct {
	OrderID    string
	Jumlah     int64
	Keterangan string
	Nama       string
	Email      string
}

// GenerateSnapToken membuat transaksi Snap dan mengembalikan token +
// redirect URL untuk frontend.
func GenerateSnapToken(o SnapOrder) (string, string, error) {
	if o.Jumlah <= 0 {
		return "", "", errors.New("jumlah pembayaran tidak valid")
	}
	if o.OrderID == "" {
		return "", "", errors.New("order_id wajib diisi")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  o.OrderID,
			GrossAmt: o.Jumlah,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: o.Nama,
			Email: o.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       o.OrderID,
				Price:    o.Jumlah,
				Qty:      1,
				Name:     o.Keterangan,
				Category: "Dana Mandiri",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", fmt.Errorf("midtrans: %v", err)
	}
	return resp.Token, resp.RedirectURL, nil
}

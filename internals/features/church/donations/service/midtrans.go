package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"sepcam_backend/internals/features/church/donations/model"
)

var SnapClient snap.Client

// InitMidtrans initializes the Midtrans Snap client with the server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken creates a Snap payment token for an ONLINE donation.
func GenerateSnapToken(d *model.DonationModel, donorName, donorEmail string) (string, error) {
	orderID := ""
	if d.DonationOrderID != nil {
		orderID = *d.DonationOrderID
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(d.DonationAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: donorName,
			Email: donorEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// MapTransactionStatus folds a Midtrans transaction_status into the local
// payment status vocabulary.
func MapTransactionStatus(transactionStatus string) string {
	switch transactionStatus {
	case "settlement", "capture", "success":
		return model.PaymentStatusPaid
	case "deny", "failure", "cancel":
		return model.PaymentStatusFailed
	case "expire":
		return model.PaymentStatusExpired
	default:
		return model.PaymentStatusPending
	}
}

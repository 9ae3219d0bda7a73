package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status order pembayaran online
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusExpired = "expired"
	StatusCanceled = "canceled"
)

// PaymentOrderModel: order Midtrans Snap untuk satu bulan Dana Mandiri.
// OrderID unik dipakai sebagai kunci idempotensi webhook.
type PaymentOrderModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OrderID    string    `gorm:"type:varchar(64);not null;uniqueIndex:uq_payment_order" json:"order_id"`
	KeluargaID uuid.UUID `gorm:"type:uuid;not null;index:idx_payment_keluarga" json:"keluarga_id"`
	Tahun      int       `gorm:"not null" json:"tahun"`
	Bulan      int       `gorm:"not null" json:"bulan"`
	Jumlah     int64     `gorm:"not null" json:"jumlah"`
	Status     string    `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`

	SnapToken   *string `gorm:"type:varchar(128)" json:"snap_token,omitempty"`
	RedirectURL *string `gorm:"type:text" json:"redirect_url,omitempty"`

	// payload mentah notifikasi terakhir dari gateway, untuk audit
	RawNotification datatypes.JSON `gorm:"type:jsonb" json:"raw_notification,omitempty"`

	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PaymentOrderModel) TableName() string {
	return "payment_orders"
}

package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/configs"
	dmModel "lingkunganku_backend/internals/features/finance/dana_mandiri/model"
	"lingkunganku_backend/internals/features/finance/payments/model"
	"lingkunganku_backend/internals/features/finance/payments/service"
	"lingkunganku_backend/internals/features/finance/rekap"
	notifModel "lingkunganku_backend/internals/features/notifications/model"
	notifService "lingkunganku_backend/internals/features/notifications/service"
	helper "lingkunganku_backend/internals/helpers"
)

var validate = validator.New()

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

type createOrderRequest struct {
	Tahun  int   `json:"tahun" validate:"required"`
	Bulan  int   `json:"bulan" validate:"required,min=1,max=12"`
	Jumlah int64 `json:"jumlah" validate:"required,gt=0"`
}

// POST /api/u/payments/danamandiri
// Umat membayar Dana Mandiri online; keluarga diambil dari token.
func (pc *PaymentController) CreateDanaMandiriOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if err := rekap.ValidateTahun(req.Tahun, time.Now(), configs.DuesYearBack, configs.DuesYearForward); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	keluargaID, err := helper.GetKeluargaUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda belum tertaut ke data keluarga")
	}

	// tolak di muka kalau bulan itu sudah lunas
	var existing int64
	if err := pc.DB.Model(&dmModel.DanaMandiriModel{}).
		Where("keluarga_id = ? AND tahun = ? AND bulan = ?", keluargaID, req.Tahun, req.Bulan).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa iuran")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Iuran bulan tersebut sudah tercatat")
	}

	order := model.PaymentOrderModel{
		OrderID:    fmt.Sprintf("DM-%d%02d-%s", req.Tahun, req.Bulan, uuid.New().String()[:8]),
		KeluargaID: keluargaID,
		Tahun:      req.Tahun,
		Bulan:      req.Bulan,
		Jumlah:     req.Jumlah,
		Status:     model.StatusPending,
	}

	token, redirectURL, err := service.GenerateSnapToken(service.SnapOrder{
		OrderID:    order.OrderID,
		Jumlah:     order.Jumlah,
		Keterangan: fmt.Sprintf("Dana Mandiri %02d/%d", req.Bulan, req.Tahun),
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}
	order.SnapToken = &token
	order.RedirectURL = &redirectURL

	if err := pc.DB.Create(&order).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan order")
	}

	return helper.JsonCreated(c, "Order pembayaran dibuat", order)
}

type midtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}

func validSignature(n midtransNotification, serverKey string) bool {
	h := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	return hex.EncodeToString(h[:]) == n.SignatureKey
}

// POST /api/payments/notification (tanpa auth, dipanggil gateway)
// capture/settlement mencatat baris Dana Mandiri; index unik membuat
// pengiriman ulang webhook idempoten.
func (pc *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var n midtransNotification
	if err := c.BodyParser(&n); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if !validSignature(n, configs.GetEnv("MIDTRANS_SERVER_KEY")) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Signature tidak valid")
	}

	var order model.PaymentOrderModel
	if err := pc.DB.First(&order, "order_id = ?", n.OrderID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Order tidak dikenal")
	}

	raw := datatypes.JSON(c.Body())

	switch n.TransactionStatus {
	case "capture", "settlement":
		if n.TransactionStatus == "capture" && n.FraudStatus == "challenge" {
			// tunggu keputusan fraud, jangan catat dulu
			return helper.JsonOK(c, "OK", nil)
		}

		now := time.Now()
		txErr := pc.DB.Transaction(func(tx *gorm.DB) error {
			row := dmModel.DanaMandiriModel{
				KeluargaID:   order.KeluargaID,
				Tahun:        order.Tahun,
				Bulan:        order.Bulan,
				Jumlah:       order.Jumlah,
				TanggalBayar: now,
				DicatatOleh:  uuid.Nil, // tercatat otomatis dari gateway
			}
			if err := tx.Create(&row).Error; err != nil {
				// baris sudah ada = webhook ulang, bukan kegagalan
				if !strings.Contains(strings.ToLower(err.Error()), "duplicate") &&
					!strings.Contains(strings.ToLower(err.Error()), "unique") {
					return err
				}
			}
			return tx.Model(&order).Updates(map[string]any{
				"status":           model.StatusPaid,
				"paid_at":          now,
				"raw_notification": raw,
			}).Error
		})
		if txErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses notifikasi")
		}

		notifService.NotifyKeluarga(pc.DB, order.KeluargaID, notifModel.JenisPembayaran,
			fmt.Sprintf("Pembayaran Dana Mandiri %02d/%d sebesar Rp%d diterima.",
				order.Bulan, order.Tahun, order.Jumlah))

	case "expire":
		pc.DB.Model(&order).Updates(map[string]any{
			"status":           model.StatusExpired,
			"raw_notification": raw,
		})
	case "cancel", "deny":
		pc.DB.Model(&order).Updates(map[string]any{
			"status":           model.StatusCanceled,
			"raw_notification": raw,
		})
	}

	return helper.JsonOK(c, "OK", nil)
}

// GET /api/u/payments/orders
func (pc *PaymentController) GetMyOrders(c *fiber.Ctx) error {
	keluargaID, err := helper.GetKeluargaUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda belum tertaut ke data keluarga")
	}

	var orders []model.PaymentOrderModel
	if err := pc.DB.
		Where("keluarga_id = ?", keluargaID).
		Order("created_at DESC").
		Limit(50).
		Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil order")
	}

	return helper.JsonOK(c, "OK", orders)
}

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"gorm.io/gorm"

	"github.com/MhMunna12/kutumbari-restaurant-server/internal/middleware/auth"
	"github.com/MhMunna12/kutumbari-restaurant-server/internal/models"
	"github.com/MhMunna12/kutumbari-restaurant-server/internal/mykafka"
)

type PaymentHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
}

// CreatePaymentIntent asks the card provider for a payment intent over the
// submitted price. The amount is the integer minor unit, price*100
// truncated, always in USD.
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	amount := int64(req.Price * 100)

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = c.Request().Context()

	intent, err := paymentintent.New(params)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"clientSecret": intent.ClientSecret})
}

// RecordPayment stores the payment and purges the referenced cart entries
// in one transaction, so a confirmed charge never leaves the paid items in
// the cart.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var payment models.Payment
	if err := c.Bind(&payment); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}
	payment.ID = 0
	payment.CreatedAt = time.Now().UTC()

	var deleted int64
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		for _, menuItemID := range payment.MenuItemIDs {
			item := models.PaymentItem{PaymentID: payment.ID, MenuItemID: menuItemID}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		if len(payment.CartIDs) == 0 {
			return nil
		}
		res := tx.Where("id IN ?", payment.CartIDs).Delete(&models.CartEntry{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	event := map[string]interface{}{
		"type":      "payment_recorded",
		"paymentID": payment.ID,
		"email":     payment.Email,
		"price":     payment.Price,
	}
	if err := h.Producer.PublishEvent(ctx, "payment_events", fmt.Sprint(payment.ID), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"paymentResult": payment,
		"deleteResult":  echo.Map{"deletedCount": deleted},
	})
}

func (h *PaymentHandler) GetPayments(c echo.Context) error {
	email := c.Param("email")
	if email != auth.EmailFromContext(c) {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
	}

	payments := []models.Payment{}
	if err := h.DB.Where("email = ?", email).Order("id ASC").Find(&payments).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, payments)
}

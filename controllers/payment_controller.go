package controllers

import (
	"encoding/json"
	"io"
	"math"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/webhook"

	"github.com/alexanderthenotsobad-git/nvrs-rest-api/configs"
	"github.com/alexanderthenotsobad-git/nvrs-rest-api/pkg/resp"
)

type PaymentController struct {
	webhookSecret string
}

func NewPaymentController(cfg *configs.Config) *PaymentController {
	stripe.Key = cfg.StripeSecretKey
	return &PaymentController{webhookSecret: cfg.StripeWebhookSecret}
}

type createPaymentIntentReq struct {
	Amount   float64           `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

// CreatePaymentIntent godoc
// @Summary Create a payment intent
// @Description First step of the payment flow; returns the client secret for the frontend
// @Tags Payments
// @Accept json
// @Produce json
// @Param payment body createPaymentIntentReq true "Payment details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/payments/create-payment-intent [post]
func (ctl *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var req createPaymentIntentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid request body")
		return
	}
	if req.Amount <= 0 {
		resp.BadRequest(c, "Invalid amount provided")
		return
	}
	if req.Currency == "" {
		req.Currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(math.Round(req.Amount * 100))), // cents
		Currency:           stripe.String(req.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.AddMetadata("integration_check", "nvrs_payment")

	pi, err := paymentintent.New(params)
	if err != nil {
		log.Error().Err(err).Msg("failed to create payment intent")
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"clientSecret":    pi.ClientSecret,
		"paymentIntentId": pi.ID,
	})
}

// HandleWebhook godoc
// @Summary Stripe webhook endpoint
// @Description Receives signed payment event notifications from Stripe
// @Tags Payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /api/payments/webhook [post]
func (ctl *PaymentController) HandleWebhook(c *gin.Context) {
	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		resp.BadRequest(c, "Missing Stripe signature")
		return
	}

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		resp.BadRequest(c, "Unable to read request body")
		return
	}

	event, err := webhook.ConstructEvent(payload, signature, ctl.webhookSecret)
	if err != nil {
		log.Error().Err(err).Msg("webhook signature verification failed")
		resp.BadRequest(c, err.Error())
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err == nil {
			log.Info().Str("paymentIntentId", pi.ID).Msg("payment succeeded")
		}
	case "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err == nil {
			log.Warn().Str("paymentIntentId", pi.ID).Msg("payment failed")
		}
	default:
		log.Info().Str("type", string(event.Type)).Msg("unhandled stripe event")
	}

	resp.OK(c, gin.H{"received": true})
}

// GetPaymentDetails godoc
// @Summary Retrieve payment details
// @Tags Payments
// @Produce json
// @Param paymentIntentId path string true "Payment intent ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/payments/{paymentIntentId} [get]
func (ctl *PaymentController) GetPaymentDetails(c *gin.Context) {
	id := c.Param("paymentIntentId")
	if id == "" {
		resp.BadRequest(c, "Payment intent ID is required")
		return
	}

	pi, err := paymentintent.Get(id, nil)
	if err != nil {
		log.Error().Err(err).Str("paymentIntentId", id).Msg("failed to retrieve payment intent")
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"status":   pi.Status,
		"amount":   float64(pi.Amount) / 100,
		"currency": pi.Currency,
		"metadata": pi.Metadata,
	})
}

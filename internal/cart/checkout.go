package cart

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/fashionhive/storefront/pkg/errors"
)

// DeliveryInfo is the delivery form filled in at checkout.
type DeliveryInfo struct {
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Notes      string `json:"notes,omitempty"`
}

// Receipt confirms a simulated checkout of one brand partition. It is not
// stored or sent anywhere.
type Receipt struct {
	Reference  uuid.UUID    `json:"reference"`
	Brand      string       `json:"brand"`
	Items      []LineItem   `json:"items"`
	TotalItems int          `json:"totalItems"`
	Total      float64      `json:"total"`
	Delivery   DeliveryInfo `json:"delivery"`
	PlacedAt   time.Time    `json:"placedAt"`
}

var (
	validate = validator.New()
	now      = time.Now
)

// Checkout simulates placing an order for one brand partition: the delivery
// form is validated, a receipt is built, and the brand's items are cleared
// from the cart. Brand is a partition key as returned by BrandGroups, so
// OtherBrand checks out the items that carry no brand.
func Checkout(e *Engine, brand string, info DeliveryInfo) (*Receipt, error) {
	if err := validate.Struct(info); err != nil {
		return nil, toValidationError(err)
	}

	var group *BrandGroup
	for _, g := range e.BrandGroups() {
		if g.Brand == brand {
			g := g
			group = &g
			break
		}
	}
	if group == nil {
		return nil, ErrEmptyBrand
	}

	receipt := &Receipt{
		Reference:  uuid.New(),
		Brand:      brand,
		Items:      group.Items,
		TotalItems: group.TotalItems,
		Total:      group.Total,
		Delivery:   info,
		PlacedAt:   now(),
	}

	e.ClearBrand(brand)
	if brand == OtherBrand {
		e.ClearBrand("")
	}

	e.logger.Info("Simulated checkout completed",
		zap.String("brand", brand),
		zap.String("reference", receipt.Reference.String()),
		zap.Float64("total", receipt.Total),
	)
	return receipt, nil
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &apperrors.ErrValidation{Field: fe.Field(), Message: "failed on the '" + fe.Tag() + "' rule"}
	}
	return &apperrors.ErrValidation{Message: err.Error()}
}

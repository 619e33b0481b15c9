// Package receipt decodes the output of the external receipt-parsing service
// into an item catalog and receipt totals.
package receipt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitit/internal/models"
)

var ErrInvalidReceipt = errors.New("invalid receipt")

// Item is one parsed line: a description and a price.
// The parser does not supply stable IDs.
type Item struct {
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
}

// Receipt is the JSON document produced by the receipt parser.
// Amounts may be JSON numbers or numeric strings.
type Receipt struct {
	Items    []Item          `json:"items" validate:"dive"`
	Total    decimal.Decimal `json:"total" validate:"gte=0"`
	TotalTax decimal.Decimal `json:"total_tax" validate:"gte=0"`
	Tip      decimal.Decimal `json:"tip" validate:"gte=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Amount tags only compare against zero, so validate the exact sign
	// rather than a float that can round tiny negatives to -0.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.Sign()
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode reads and validates one receipt document.
func Decode(r io.Reader) (*Receipt, error) {
	var rc Receipt
	if err := json.NewDecoder(r).Decode(&rc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	if err := rc.Validate(); err != nil {
		return nil, err
	}
	return &rc, nil
}

// Validate checks that every amount is non-negative.
func (rc *Receipt) Validate() error {
	if err := validate.Struct(rc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = fmt.Sprintf("%s must be %s %s", fe.Namespace(), fe.Tag(), fe.Param())
			}
			return fmt.Errorf("%w: %s", ErrInvalidReceipt, strings.Join(fields, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	return nil
}

// Catalog converts the parsed lines into catalog items with fresh IDs.
// Every call yields new IDs: re-ingesting the same receipt is a new catalog.
func (rc *Receipt) Catalog() models.Catalog {
	catalog := make(models.Catalog, len(rc.Items))
	for i, item := range rc.Items {
		catalog[i] = models.Item{
			ID:          uuid.New().String(),
			Description: strings.TrimSpace(item.Description),
			Price:       item.Price,
		}
	}
	return catalog
}

// Totals returns the receipt-level total, tax and tip.
func (rc *Receipt) Totals() models.Totals {
	return models.Totals{
		Total: rc.Total,
		Tax:   rc.TotalTax,
		Tip:   rc.Tip,
	}
}

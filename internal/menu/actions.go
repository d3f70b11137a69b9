package menu

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/faststock/internal/i18n"
	"github.com/rogerio-castellano/faststock/internal/models"
	"github.com/rogerio-castellano/faststock/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var errInvalidValue = errors.New("invalid value")

func (m *Menu) addProduct(ctx context.Context) error {
	m.screen()
	m.println(i18n.AddHeader)

	typeWord, err := m.prompt(ctx, i18n.PromptType)
	if err != nil {
		return err
	}
	kind, ok := models.ParseKind(i18n.Fold(typeWord))
	if !ok {
		m.logger.WithField("type", typeWord).Info("invalid product type")
		m.println(i18n.InvalidType)
		return nil
	}

	name, err := m.prompt(ctx, i18n.PromptName)
	if err != nil {
		return err
	}
	rawPrice, err := m.prompt(ctx, i18n.PromptPrice)
	if err != nil {
		return err
	}
	price, err := parsePrice(rawPrice)
	if err != nil {
		return m.rejectValue(err)
	}

	var product models.Product
	switch kind {
	case models.KindElectronic:
		raw, err := m.prompt(ctx, i18n.PromptWarranty)
		if err != nil {
			return err
		}
		months, err := parseCount(raw)
		if err != nil {
			return m.rejectValue(err)
		}
		product = models.NewElectronic(name, price, months)
	case models.KindFood:
		expiration, err := m.prompt(ctx, i18n.PromptExpiration)
		if err != nil {
			return err
		}
		product = models.NewFood(name, price, strings.TrimSpace(expiration))
	default:
		product = models.NewGeneric(name, price)
	}

	created, err := m.products.Create(product)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	m.logger.WithFields(logrus.Fields{
		"product_id": created.ID,
		"kind":       created.Kind,
	}).Debug("product added")
	m.println(i18n.ProductAdded, strconv.Itoa(created.ID))
	return nil
}

func (m *Menu) removeProduct(ctx context.Context) error {
	m.screen()
	m.println(i18n.RemoveHeader)

	id, ok, err := m.promptID(ctx, i18n.PromptRemoveID)
	if err != nil || !ok {
		return err
	}

	if err := m.products.Delete(id); err != nil {
		return m.handleLookupError(err)
	}
	m.logger.WithField("product_id", id).Debug("product removed")
	m.println(i18n.ProductRemoved, strconv.Itoa(id))
	return nil
}

func (m *Menu) listProducts() error {
	m.screen()
	m.println(i18n.ListHeader)

	products, err := m.products.GetAll()
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	if len(products) == 0 {
		m.println(i18n.ListEmpty)
	}
	for _, p := range products {
		fmt.Fprintln(m.out, p.Format(m.p))
	}
	m.println(i18n.ListFooter)
	return nil
}

func (m *Menu) findProduct(ctx context.Context) error {
	m.screen()
	m.println(i18n.FindHeader)

	id, ok, err := m.promptID(ctx, i18n.PromptFindID)
	if err != nil || !ok {
		return err
	}

	product, err := m.products.GetByID(id)
	if err != nil {
		return m.handleLookupError(err)
	}
	fmt.Fprintln(m.out, product.Format(m.p))
	return nil
}

// promptID reads a product ID. ok is false when the input was not a number,
// in which case the error message has already been shown.
func (m *Menu) promptID(ctx context.Context, key string) (id int, ok bool, err error) {
	raw, err := m.prompt(ctx, key)
	if err != nil {
		return 0, false, err
	}
	id, err = strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		m.logger.WithError(err).Info("invalid product ID")
		m.println(i18n.InvalidID)
		return 0, false, nil
	}
	return id, true, nil
}

// handleLookupError shows not-found errors and passes anything else up.
func (m *Menu) handleLookupError(err error) error {
	var notFound *repo.ProductNotFoundError
	if !errors.As(err, &notFound) {
		return err
	}
	m.logger.WithField("product_id", notFound.ID).Info("product not found")
	m.println(i18n.NotFound, strconv.Itoa(notFound.ID))
	return nil
}

func (m *Menu) rejectValue(err error) error {
	m.logger.WithError(err).Info("invalid product value")
	m.println(i18n.InvalidValue)
	return nil
}

// parsePrice accepts any non-negative decimal.
func parsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: price %q", errInvalidValue, s)
	}
	if price.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: negative price %s", errInvalidValue, price)
	}
	return price, nil
}

// parseCount accepts any non-negative integer.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidValue, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative count %d", errInvalidValue, n)
	}
	return n, nil
}

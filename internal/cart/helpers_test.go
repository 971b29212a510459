package cart

import (
	"errors"

	"github.com/fashionhive/storefront/internal/domain"
	"github.com/fashionhive/storefront/internal/pricing"
)

func product(id, brand, price string) domain.Product {
	return domain.Product{
		ID:              id,
		Name:            "Product " + id,
		Price:           pricing.StringPrice(price),
		BrandCollection: brand,
		Category:        "Pret",
	}
}

type fakeStore struct {
	payload []byte
	loadErr error
	saveErr error
	saves   int
}

func (s *fakeStore) Load() ([]byte, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.payload, nil
}

func (s *fakeStore) Save(payload []byte) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.payload = append([]byte(nil), payload...)
	return nil
}

var errQuotaExceeded = errors.New("quota exceeded")

func mustReduce(state State, cmds ...Command) State {
	for _, cmd := range cmds {
		next, err := Reduce(state, cmd)
		if err != nil {
			panic(err)
		}
		state = next
	}
	return state
}

func productIDs(items []LineItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ProductID
	}
	return ids
}

package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/fashionhive/storefront/internal/cart"
	"github.com/fashionhive/storefront/internal/catalogclient"
	"github.com/fashionhive/storefront/internal/config"
	"github.com/fashionhive/storefront/internal/domain"
	"github.com/fashionhive/storefront/internal/repository/file"
	"github.com/fashionhive/storefront/internal/repository/memory"
	"github.com/fashionhive/storefront/internal/repository/sqlite"
)

// productSource looks up products before they are added to the cart
type productSource interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

// session is one invocation of the cart tool: the restored cart and the
// catalog it shops from.
type session struct {
	engine  *cart.Engine
	catalog productSource
	out     io.Writer
	logger  *zap.Logger
	closers []io.Closer
}

func (s *session) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openSession restores the cart from the configured store
func openSession(cfg *config.Config, out io.Writer, logger *zap.Logger) (*session, error) {
	s := &session{
		catalog: catalogclient.NewClient(cfg.Catalog, logger),
		out:     out,
		logger:  logger,
	}

	var store cart.Store
	switch cfg.Cart.Store {
	case config.CartStoreFile:
		slot, err := file.NewCartSlot(cfg.Cart.Path, cfg.Cart.StorageKey)
		if err != nil {
			return nil, fmt.Errorf("failed to open cart file: %w", err)
		}
		logger.Debug("Using file cart store", zap.String("path", slot.Path()))
		store = slot
	case config.CartStoreSQLite:
		slot, err := sqlite.NewCartSlot(filepath.Join(cfg.Cart.Path, "cart.db"), cfg.Cart.StorageKey, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open cart database: %w", err)
		}
		s.closers = append(s.closers, slot)
		store = slot
	default:
		store = memory.NewCartSlot()
	}

	s.engine = cart.NewEngine(store, logger)
	return s, nil
}

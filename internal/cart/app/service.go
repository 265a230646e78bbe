package app

import (
	"context"
	"sync"
	"time"

	"github.com/dwikikusuma/crypto-storefront/internal/cart/domain"
)

type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
	OpClear  Op = "clear"
)

// Change describes a completed mutation. Cart is the state after it.
type Change struct {
	Op        Op
	ProductID int64
	Cart      domain.Cart
}

// Observer is called synchronously after every mutation, in mutation order.
// Observers must not call back into the Service.
type Observer func(Change)

// Service owns the cart state. Mutations are serialized: each one loads,
// updates, saves and notifies before the next one starts.
type Service struct {
	mu        sync.Mutex
	repo      CartRepo
	observers []Observer
	now       func() time.Time
}

func NewService(repo CartRepo, observers ...Observer) *Service {
	return &Service{
		repo:      repo,
		observers: observers,
		now:       time.Now,
	}
}

func (s *Service) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

func (s *Service) GetCart(ctx context.Context) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Get(ctx)
}

// AddToCart accepts any product id; callers that need catalog membership
// check it before calling.
func (s *Service) AddToCart(ctx context.Context, productID int64) (domain.Cart, error) {
	return s.mutate(ctx, OpAdd, productID, func(c domain.Cart) (domain.Cart, bool, error) {
		return c.Add(productID), true, nil
	})
}

// RemoveFromCart is a no-op, without notification, when the product is not
// in the cart.
func (s *Service) RemoveFromCart(ctx context.Context, productID int64) (domain.Cart, error) {
	return s.mutate(ctx, OpRemove, productID, func(c domain.Cart) (domain.Cart, bool, error) {
		next, changed := c.Remove(productID)
		return next, changed, nil
	})
}

func (s *Service) ClearCart(ctx context.Context) (domain.Cart, error) {
	return s.mutate(ctx, OpClear, 0, func(c domain.Cart) (domain.Cart, bool, error) {
		return c.Clear(), true, nil
	})
}

// ClearAfter hands the current cart to fn and clears it only when fn
// succeeds, all under the mutation lock: no other mutation can land between
// the read and the clear. A failing fn leaves the cart untouched and its
// error is returned. fn must not call back into the Service.
func (s *Service) ClearAfter(ctx context.Context, fn func(domain.Cart) error) (domain.Cart, error) {
	return s.mutate(ctx, OpClear, 0, func(c domain.Cart) (domain.Cart, bool, error) {
		if err := fn(c.Clone()); err != nil {
			return c, false, err
		}
		return c.Clear(), true, nil
	})
}

func (s *Service) mutate(ctx context.Context, op Op, productID int64, fn func(domain.Cart) (domain.Cart, bool, error)) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.repo.Get(ctx)
	if err != nil {
		return domain.Cart{}, err
	}

	next, changed, err := fn(cart)
	if err != nil {
		return domain.Cart{}, err
	}
	if !changed {
		return cart, nil
	}
	next.UpdatedAt = s.now()

	if err := s.repo.Save(ctx, next); err != nil {
		return domain.Cart{}, err
	}

	change := Change{Op: op, ProductID: productID, Cart: next}
	for _, o := range s.observers {
		o(change)
	}
	return next, nil
}

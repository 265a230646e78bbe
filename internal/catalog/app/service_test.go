package app

import (
	"context"
	"testing"

	"github.com/go-faster/errors"

	"github.com/dwikikusuma/crypto-storefront/internal/catalog/domain"
)

type fakeRepo struct {
	gets int
}

func (r *fakeRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	r.gets++
	if id == 42 {
		return domain.Product{ID: 42, Name: "Mug"}, nil
	}
	return domain.Product{}, ErrNotFound
}

func (r *fakeRepo) List(ctx context.Context) ([]domain.Product, error) {
	return []domain.Product{{ID: 42, Name: "Mug"}}, nil
}

func TestGetProductValidation(t *testing.T) {
	t.Run("zero id -> invalid", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo)
		_, err := svc.GetProduct(context.Background(), 0)
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		if repo.gets != 0 {
			t.Fatalf("repo should not be queried for invalid ids")
		}
	})

	t.Run("negative id -> invalid", func(t *testing.T) {
		svc := NewService(&fakeRepo{})
		_, err := svc.GetProduct(context.Background(), -7)
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("missing -> not found", func(t *testing.T) {
		svc := NewService(&fakeRepo{})
		_, err := svc.GetProduct(context.Background(), 7)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		svc := NewService(&fakeRepo{})
		p, err := svc.GetProduct(context.Background(), 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Mug" {
			t.Fatalf("got %q", p.Name)
		}
	})
}

func TestListProducts(t *testing.T) {
	svc := NewService(&fakeRepo{})
	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
}

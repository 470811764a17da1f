package facts

import (
	"context"
	"strings"
	"testing"

	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type fakeProductRepo struct {
	products      []*entity.Product
	categoryCount map[string]int64
	perCategory   []entity.CategoryCount
	searchResults map[string][]*entity.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error { return nil }

func (f *fakeProductRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if len(specs) == 0 {
		return int64(len(f.products)), nil
	}
	if byCategory, ok := specs[0].(specification.ByCategory); ok {
		return f.categoryCount[byCategory.Category], nil
	}
	return 0, nil
}

func (f *fakeProductRepo) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	return f.searchResults[term], nil
}

func (f *fakeProductRepo) CountPerCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	return f.perCategory, nil
}

type fakeUserRepo struct {
	total  int64
	active int64
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

func (f *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if len(specs) > 0 {
		return f.active, nil
	}
	return f.total, nil
}

type fakeSaleRepo struct {
	total int64
}

func (f *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error { return nil }

func (f *fakeSaleRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Sale, error) {
	return nil, nil
}

func (f *fakeSaleRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return f.total, nil
}

func product(name, category string, price float64, stock int) *entity.Product {
	return &entity.Product{Id: uuid.New(), Name: name, Category: category, Price: price, Stock: stock}
}

func newTestResolver() *Resolver {
	ps5 := product("PlayStation 5", "Gaming", 499.99, 45)
	iphone := product("iPhone 15 Pro", "Smartphones", 999.99, 50)

	products := &fakeProductRepo{
		products:      []*entity.Product{ps5, iphone},
		categoryCount: map[string]int64{"Laptops": 4, "Smartphones": 3},
		perCategory: []entity.CategoryCount{
			{Category: "Gaming", Count: 3},
			{Category: "Laptops", Count: 4},
		},
		searchResults: map[string][]*entity.Product{
			"playstation": {ps5},
			"iphone":      {iphone},
			"Apple":       {iphone},
		},
	}
	users := &fakeUserRepo{total: 12, active: 10}
	sales := &fakeSaleRepo{total: 7}

	return NewResolver(products, users, sales)
}

func TestResolveLaptopCount(t *testing.T) {
	r := newTestResolver()

	got, err := r.Resolve(context.Background(), "¿Cuántos laptops hay en stock?")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hay 4 laptops disponibles en nuestra tienda." {
		t.Errorf("Resolve = %q", got)
	}
}

func TestResolveUserCount(t *testing.T) {
	r := newTestResolver()

	got, err := r.Resolve(context.Background(), "¿Cuántos usuarios están registrados?")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Tenemos 12 usuarios registrados, de los cuales 10 están activos." {
		t.Errorf("Resolve = %q", got)
	}
}

func TestResolveAggregateStats(t *testing.T) {
	r := newTestResolver()

	got, err := r.Resolve(context.Background(), "¿Cuántas cosas tienes?")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Total de productos: 2",
		"Total de usuarios: 12",
		"Usuarios activos: 10",
		"Total de ventas: 7",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("aggregate stats missing %q in:\n%s", want, got)
		}
	}
}

func TestResolvePrice(t *testing.T) {
	r := newTestResolver()

	got, err := r.Resolve(context.Background(), "¿Cuál es el precio del iphone 15?")
	if err != nil {
		t.Fatal(err)
	}
	if got != "El iPhone 15 Pro tiene un precio de $999.99 y hay 50 unidades en stock." {
		t.Errorf("Resolve = %q", got)
	}
}

func TestResolveStock(t *testing.T) {
	r := newTestResolver()

	got, err := r.Resolve(context.Background(), "¿Hay stock del playstation 5?")
	if err != nil {
		t.Fatal(err)
	}
	if got != "El PlayStation 5 tiene 45 unidades disponibles en stock." {
		t.Errorf("Resolve = %q", got)
	}
}

func TestResolveCategoryBreakdown(t *testing.T) {
	r := newTestResolver()

	got, err := r.Resolve(context.Background(), "¿Qué hay por categoría?")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "- Gaming: 3 productos") || !strings.Contains(got, "- Laptops: 4 productos") {
		t.Errorf("Resolve = %q", got)
	}
}

func TestResolveUnrecognizedShape(t *testing.T) {
	r := newTestResolver()

	got, err := r.Resolve(context.Background(), "hola")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("Resolve = %q, want empty string for unrecognized query", got)
	}
}

// Package facts answers store questions with live database numbers so the
// assistant never invents stock, prices or counts.
package facts

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"techstore-ai-be/internal/repository/contract"
	"techstore-ai-be/internal/repository/specification"
)

type Resolver struct {
	products contract.ProductRepository
	users    contract.UserRepository
	sales    contract.SaleRepository
}

func NewResolver(products contract.ProductRepository, users contract.UserRepository, sales contract.SaleRepository) *Resolver {
	return &Resolver{
		products: products,
		users:    users,
		sales:    sales,
	}
}

// Resolve inspects the message and returns a Spanish fact sentence built from
// live data, or the empty string when no query shape is recognized.
func (r *Resolver) Resolve(ctx context.Context, message string) (string, error) {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "cuántos") || strings.Contains(lower, "cuántas"):
		return r.resolveCount(ctx, lower)
	case strings.Contains(lower, "precio") || strings.Contains(lower, "cuesta") || strings.Contains(lower, "vale"):
		return r.resolvePrice(ctx, lower)
	case strings.Contains(lower, "qué productos") || strings.Contains(lower, "qué modelos"):
		return r.resolveListing(ctx, lower)
	case strings.Contains(lower, "stock") || strings.Contains(lower, "disponible"):
		return r.resolveStock(ctx, lower)
	case strings.Contains(lower, "categoría") || strings.Contains(lower, "categoria"):
		return r.resolveCategories(ctx)
	}
	return "", nil
}

func (r *Resolver) resolveCount(ctx context.Context, lower string) (string, error) {
	switch {
	case strings.Contains(lower, "laptop") || strings.Contains(lower, "portátil"):
		count, err := r.products.Count(ctx, specification.ByCategory{Category: "Laptops"})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Hay %d laptops disponibles en nuestra tienda.", count), nil

	case strings.Contains(lower, "smartphone") || strings.Contains(lower, "teléfono") || strings.Contains(lower, "telefono"):
		count, err := r.products.Count(ctx, specification.ByCategory{Category: "Smartphones"})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Hay %d smartphones disponibles en nuestra tienda.", count), nil

	case strings.Contains(lower, "usuario") || strings.Contains(lower, "cliente"):
		total, err := r.users.Count(ctx)
		if err != nil {
			return "", err
		}
		active, err := r.users.Count(ctx, specification.ActiveOnly{})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Tenemos %d usuarios registrados, de los cuales %d están activos.", total, active), nil

	case strings.Contains(lower, "producto"):
		count, err := r.products.Count(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Tenemos %d productos tecnológicos en nuestro catálogo.", count), nil

	case strings.Contains(lower, "venta"):
		count, err := r.sales.Count(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Se han realizado %d ventas en total.", count), nil
	}

	totalProducts, err := r.products.Count(ctx)
	if err != nil {
		return "", err
	}
	totalUsers, err := r.users.Count(ctx)
	if err != nil {
		return "", err
	}
	activeUsers, err := r.users.Count(ctx, specification.ActiveOnly{})
	if err != nil {
		return "", err
	}
	totalSales, err := r.sales.Count(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Estadísticas de la tienda:\n- Total de productos: %d\n- Total de usuarios: %d\n- Usuarios activos: %d\n- Total de ventas: %d",
		totalProducts, totalUsers, activeUsers, totalSales), nil
}

func (r *Resolver) resolvePrice(ctx context.Context, lower string) (string, error) {
	for _, term := range searchTerms(lower) {
		products, err := r.products.Search(ctx, term)
		if err != nil {
			return "", err
		}
		if len(products) > 0 {
			p := products[0]
			return fmt.Sprintf("El %s tiene un precio de $%s y hay %d unidades en stock.",
				p.Name, formatPrice(p.Price), p.Stock), nil
		}
	}
	return "", nil
}

func (r *Resolver) resolveListing(ctx context.Context, lower string) (string, error) {
	if strings.Contains(lower, "apple") {
		return r.brandListing(ctx, "Apple")
	}
	if strings.Contains(lower, "samsung") {
		return r.brandListing(ctx, "Samsung")
	}

	products, err := r.products.FindAll(ctx)
	if err != nil {
		return "", err
	}
	seen := make(map[string]bool)
	var categories []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	lines := make([]string, len(categories))
	for i, c := range categories {
		lines[i] = "- " + c
	}
	return "Tenemos productos en las siguientes categorías:\n" + strings.Join(lines, "\n"), nil
}

func (r *Resolver) brandListing(ctx context.Context, brand string) (string, error) {
	products, err := r.products.Search(ctx, brand)
	if err != nil {
		return "", err
	}
	lines := make([]string, len(products))
	for i, p := range products {
		lines[i] = fmt.Sprintf("- %s ($%s, Stock: %d)", p.Name, formatPrice(p.Price), p.Stock)
	}
	return fmt.Sprintf("Productos de %s disponibles:\n%s", brand, strings.Join(lines, "\n")), nil
}

func (r *Resolver) resolveStock(ctx context.Context, lower string) (string, error) {
	for _, term := range searchTerms(lower) {
		products, err := r.products.Search(ctx, term)
		if err != nil {
			return "", err
		}
		if len(products) > 0 {
			p := products[0]
			return fmt.Sprintf("El %s tiene %d unidades disponibles en stock.", p.Name, p.Stock), nil
		}
	}
	return "", nil
}

func (r *Resolver) resolveCategories(ctx context.Context) (string, error) {
	counts, err := r.products.CountPerCategory(ctx)
	if err != nil {
		return "", err
	}
	lines := make([]string, len(counts))
	for i, c := range counts {
		lines[i] = fmt.Sprintf("- %s: %d productos", c.Category, c.Count)
	}
	return "Productos por categoría:\n" + strings.Join(lines, "\n"), nil
}

// searchTerms keeps whitespace-split words longer than three runes, the ones
// likely to be product names rather than filler.
func searchTerms(lower string) []string {
	var terms []string
	for _, word := range strings.Split(lower, " ") {
		if len([]rune(word)) > 3 {
			terms = append(terms, word)
		}
	}
	return terms
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

package catalog

import (
	"sort"

	"techconnect/internal/models"
)

// Catalog, ürün ve plan tablolarını tutar. Tablolar açılışta bir kez
// doldurulur ve sonrasında salt okunurdur.
type Catalog struct {
	products map[string]models.Product
	plans    map[string]models.Plan
}

// NewCatalog, sabit ürün ve plan tablolarıyla bir Catalog oluşturur.
func NewCatalog() *Catalog {
	return &Catalog{
		products: map[string]models.Product{
			"router-x1": {
				ID:       "router-x1",
				Name:     "TechConnect Pro Router X1",
				Price:    299.99,
				Image:    "/static/img/router-x1.jpg",
				Features: []string{"WiFi 6 Technology", "Up to 3000 Mbps", "8 Gigabit Ports"},
			},
			"modem-pro": {
				ID:       "modem-pro",
				Name:     "TechConnect Cable Modem Pro",
				Price:    199.99,
				Image:    "/static/img/modem-pro.jpg",
				Features: []string{"DOCSIS 3.1", "Up to 1.2 Gbps", "Advanced Security"},
			},
			"business-hub": {
				ID:       "business-hub",
				Name:     "TechConnect Business Hub",
				Price:    599.99,
				Image:    "/static/img/business-hub.jpg",
				Features: []string{"Enterprise Features", "24/7 Priority Support", "Advanced Analytics"},
			},
		},
		plans: map[string]models.Plan{
			"basic":      {ID: "basic", Name: "Basic Plan", Price: 39.99, Speed: "100 Mbps"},
			"pro":        {ID: "pro", Name: "Pro Plan", Price: 69.99, Speed: "500 Mbps"},
			"enterprise": {ID: "enterprise", Name: "Enterprise Plan", Price: 149.99, Speed: "1 Gbps"},
		},
	}
}

// ProductByID, ürünü kimliğine göre döndürür.
func (c *Catalog) ProductByID(id string) (models.Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// PlanByID, planı kimliğine göre döndürür.
func (c *Catalog) PlanByID(id string) (models.Plan, bool) {
	p, ok := c.plans[id]
	return p, ok
}

// Products, tüm ürünleri kimliğe göre sıralı döndürür.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Plans, tüm planları fiyata göre sıralı döndürür.
func (c *Catalog) Plans() []models.Plan {
	out := make([]models.Plan, 0, len(c.plans))
	for _, p := range c.plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out
}

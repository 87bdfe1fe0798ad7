// Package catalog holds the static demo data shown by the bots: products,
// bookable services, currency rates, and booking time slots. Rates are
// hardcoded on purpose; real retrieval is out of scope for the demo.
package catalog

import "sort"

// Product is a single storefront item.
type Product struct {
	ID          int
	Name        string
	Price       int
	Category    string
	Description string
}

// Service is a bookable service offering.
type Service struct {
	ID       int
	Name     string
	Duration string
	Price    int
}

// Rate is a demo currency quote.
type Rate struct {
	Code   string
	Value  float64
	Change string
}

// Catalog groups the reference data one bot variant serves.
type Catalog struct {
	Products map[int]Product
	Services map[int]Service
	Rates    []Rate
	// Slots are the bookable times offered for every service.
	Slots []string
}

// Categories returns the sorted distinct product categories.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.Products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// ProductsByCategory returns products of the given category ordered by id.
func (c *Catalog) ProductsByCategory(category string) []Product {
	var out []Product
	for _, p := range c.Products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ServicesSorted returns all services ordered by id.
func (c *Catalog) ServicesSorted() []Service {
	out := make([]Service, 0, len(c.Services))
	for _, s := range c.Services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var defaultSlots = []string{"10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00", "18:00"}

var defaultRates = []Rate{
	{Code: "USD", Value: 92.5, Change: "+0.5"},
	{Code: "EUR", Value: 100.2, Change: "+0.3"},
	{Code: "CNY", Value: 12.8, Change: "-0.1"},
	{Code: "GBP", Value: 116.7, Change: "+0.7"},
}

// Showcase returns the storefront-branded demo catalog.
func Showcase() *Catalog {
	return &Catalog{
		Products: map[int]Product{
			1: {ID: 1, Name: "📱 iPhone 15 Pro", Price: 999, Category: "Electronics", Description: "Latest iPhone with a 48 MP camera"},
			2: {ID: 2, Name: "💻 MacBook Air M3", Price: 1299, Category: "Laptops", Description: "Powerful and lightweight laptop"},
			3: {ID: 3, Name: "📚 Go in Practice", Price: 49, Category: "Books", Description: "Advanced guide to production Go"},
			4: {ID: 4, Name: "🎧 AirPods Pro", Price: 249, Category: "Electronics", Description: "Wireless earbuds with noise cancelling"},
			5: {ID: 5, Name: "⌚ Apple Watch", Price: 399, Category: "Gadgets", Description: "Smart watch for health and fitness"},
		},
		Services: map[int]Service{
			1: {ID: 1, Name: "💇 Haircut", Duration: "1 hour", Price: 1500},
			2: {ID: 2, Name: "💅 Manicure", Duration: "1.5 hours", Price: 2000},
			3: {ID: 3, Name: "✂️ Shave", Duration: "30 min", Price: 800},
			4: {ID: 4, Name: "🧖 Spa treatment", Duration: "2 hours", Price: 3500},
		},
		Rates: defaultRates,
		Slots: defaultSlots,
	}
}

// Salon returns the salon-branded demo catalog for the near-duplicate bot.
func Salon() *Catalog {
	return &Catalog{
		Products: map[int]Product{
			1: {ID: 1, Name: "🧴 Repair shampoo", Price: 19, Category: "Care", Description: "Salon-grade keratin formula"},
			2: {ID: 2, Name: "💄 Lip tint", Price: 14, Category: "Makeup", Description: "All-day matte finish"},
			3: {ID: 3, Name: "🪮 Styling kit", Price: 35, Category: "Care", Description: "Brush, clips and heat spray"},
			4: {ID: 4, Name: "💅 Gel polish set", Price: 27, Category: "Makeup", Description: "Six seasonal shades"},
		},
		Services: map[int]Service{
			1: {ID: 1, Name: "💇 Haircut & styling", Duration: "1 hour", Price: 1800},
			2: {ID: 2, Name: "🎨 Coloring", Duration: "2.5 hours", Price: 4200},
			3: {ID: 3, Name: "💅 Manicure", Duration: "1.5 hours", Price: 2000},
			4: {ID: 4, Name: "🧖 Spa treatment", Duration: "2 hours", Price: 3500},
		},
		Rates: defaultRates,
		Slots: defaultSlots,
	}
}

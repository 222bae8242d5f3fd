// Package seed loads the sample catalog and the initial admin account.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
)

// namespace derives stable product ids so re-seeding finds existing rows.
var namespace = uuid.MustParse("6f1c3f0e-5a8b-4f7e-9a51-3c2d8e7b9a10")

type sample struct {
	name          string
	description   string
	category      string
	price         string
	originalPrice string
	features      []string
	specs         map[string]string
	featured      bool
	inStock       bool
	rating        float64
	reviews       int
	added         string
}

var samples = []sample{
	{
		name:          "NylonSpinner 3000 Pro",
		description:   "High-speed nylon spinning machine with advanced temperature control for consistent fiber quality and maximum productivity.",
		category:      "Spinning Machines",
		price:         "$45,000",
		originalPrice: "$52,000",
		features: []string{
			"Automatic temperature regulation",
			"Variable speed control from 1000-5000 RPM",
			"Integrated cooling system",
			"Touch screen interface",
		},
		specs:    map[string]string{"Dimensions": "2.5m x 1.8m x 2.2m", "Weight": "1200 kg", "Power": "380V, 22kW", "Capacity": "500 kg/day"},
		featured: true,
		inStock:  true,
		rating:   4.8,
		reviews:  24,
		added:    "2023-05-15",
	},
	{
		name:          "ExtruderPro X7 Elite",
		description:   "Industrial-grade nylon extruder with precision die control and multiple heating zones for superior output quality.",
		category:      "Extruders",
		price:         "$68,500",
		originalPrice: "$75,000",
		features: []string{
			"7 independent heating zones",
			"Digital pressure monitoring",
			"Automatic die cleaning system",
			"Energy-efficient motors",
		},
		specs:    map[string]string{"Dimensions": "3.2m x 1.2m x 1.6m", "Weight": "1800 kg", "Power": "415V, 35kW", "Capacity": "750 kg/day"},
		featured: true,
		inStock:  true,
		rating:   4.9,
		reviews:  18,
		added:    "2023-08-22",
	},
	{
		name:        "TwistMaster 2500 Advanced",
		description: "Precision twisting machine for nylon yarn with adjustable tension control and automated package handling.",
		category:    "Twisting Machines",
		price:       "$38,900",
		features: []string{
			"Electronic tension control",
			"Automatic package doffing",
			"Spindle speed up to 12,000 RPM",
			"Low vibration operation",
		},
		specs:   map[string]string{"Dimensions": "4.5m x 1.5m x 2.0m", "Weight": "1500 kg", "Power": "380V, 18kW", "Capacity": "600 kg/day"},
		inStock: true,
		rating:  4.6,
		reviews: 31,
		added:   "2023-11-10",
	},
	{
		name:          "HeatSet 1800 Premium",
		description:   "Continuous heat setting machine for nylon fibers with precise temperature control and energy efficiency.",
		category:      "Heat Treatment",
		price:         "$55,200",
		originalPrice: "$62,000",
		features: []string{
			"Digital temperature control ±1°C",
			"Variable speed conveyor",
			"Multiple heating chambers",
			"Automatic cooling zone",
		},
		specs:   map[string]string{"Dimensions": "6.0m x 2.0m x 2.2m", "Weight": "2200 kg", "Power": "415V, 45kW", "Capacity": "800 kg/day"},
		rating:  4.7,
		reviews: 15,
		added:   "2024-01-05",
	},
	{
		name:          "DrawLine 5000 Ultra",
		description:   "Multi-stage drawing line for nylon fibers with precision tension control and automated threading system.",
		category:      "Drawing Machines",
		price:         "$89,000",
		originalPrice: "$98,000",
		features: []string{
			"5-stage drawing process",
			"Individual godet speed control",
			"Heated godets with PID control",
			"Automatic threading system",
		},
		specs:    map[string]string{"Dimensions": "8.5m x 2.2m x 2.5m", "Weight": "3500 kg", "Power": "415V, 60kW", "Capacity": "1000 kg/day"},
		featured: true,
		inStock:  true,
		rating:   4.9,
		reviews:  12,
		added:    "2024-02-18",
	},
	{
		name:        "PolyMix 1200 Smart",
		description: "Advanced polymer mixing system for nylon compound preparation with intelligent recipe management.",
		category:    "Mixing Equipment",
		price:       "$42,800",
		features: []string{
			"Vacuum mixing chamber",
			"Automatic additive dispensing",
			"Temperature and humidity control",
			"Recipe management system",
		},
		specs:   map[string]string{"Dimensions": "2.8m x 2.5m x 3.0m", "Weight": "1600 kg", "Power": "380V, 25kW", "Capacity": "1200 kg/day"},
		inStock: true,
		rating:  4.5,
		reviews: 22,
		added:   "2023-09-30",
	},
}

// ProductID returns the stable id of the sample product with the given name.
func ProductID(name string) string {
	return uuid.NewSHA1(namespace, []byte(name)).String()
}

// Products returns fresh copies of the sample catalog.
func Products() []*domain.Product {
	out := make([]*domain.Product, 0, len(samples))
	for _, s := range samples {
		added, err := time.Parse(time.DateOnly, s.added)
		if err != nil {
			panic("seed: bad date " + s.added)
		}

		p := &domain.Product{
			ID:             ProductID(s.name),
			Name:           s.name,
			Description:    s.description,
			Category:       s.category,
			Price:          domain.CleanPrice(&s.price),
			OriginalPrice:  domain.CleanPrice(&s.originalPrice),
			Features:       domain.CleanFeatures(s.features),
			Specifications: domain.CleanSpecifications(s.specs),
			Featured:       s.featured,
			InStock:        s.inStock,
			Rating:         s.rating,
			Reviews:        s.reviews,
			CreatedAt:      added.UTC(),
			UpdatedAt:      added.UTC(),
		}
		p.Discount = domain.DeriveDiscount(p.Price, p.OriginalPrice, 0)
		out = append(out, p)
	}
	return out
}

package catalog

import "github.com/ahmadsvu/stationery-hub-frontend/app/models"

// SampleProducts is the canned catalogue shown when both the backend and
// the local snapshot are unavailable.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Premium Notebook",
			Description: "High-quality paper notebook with leather cover",
			Price:       24.99,
			Image:       "https://images.unsplash.com/photo-1544816155-12df9643f363?auto=format&fit=crop&q=80&w=400",
			Category:    "Notebooks",
		},
		{
			ID:          "2",
			Name:        "Fountain Pen Set",
			Description: "Elegant fountain pen with multiple ink cartridges",
			Price:       45.99,
			Image:       "https://images.unsplash.com/photo-1585336261022-680e295ce3fe?auto=format&fit=crop&q=80&w=400",
			Category:    "Pens",
		},
		{
			ID:          "3",
			Name:        "Watercolor Paper Pack",
			Description: "Professional grade watercolor paper, 20 sheets",
			Price:       18.99,
			Image:       "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?auto=format&fit=crop&q=80&w=400",
			Category:    "Paper",
		},
	}
}

// SamplePosts is the canned blog shown in the same degraded mode.
func SamplePosts() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:      "sample-1",
			Title:   "Choosing the Right Notebook",
			Content: "Paper weight, binding and cover material all change how a notebook feels in daily use.",
			Author:  "Stationery Hub",
		},
		{
			ID:      "sample-2",
			Title:   "Caring for Fountain Pens",
			Content: "A fountain pen lasts decades with a simple cleaning routine between ink refills.",
			Author:  "Stationery Hub",
		},
	}
}

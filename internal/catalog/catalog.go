// Package catalog holds the fixed datasets the wizard offers: budget and
// guest buckets, style/season/venue options, the default category split and
// the achievement list.
package catalog

import "github.com/theirongolddev/vowbudget/internal/model"

// Achievement ids referenced by game logic.
const (
	BudgetMaster   = "budget_master"
	DetailOriented = "detail_oriented"
	SmartSaver     = "smart_saver"
)

// BudgetRanges are the preset total-budget buckets, in USD.
var BudgetRanges = []model.Range{
	{Label: "Intimate (Under $10k)", Min: 5000, Max: 10000, Average: 7500},
	{Label: "Modest ($10k - $25k)", Min: 10000, Max: 25000, Average: 17500},
	{Label: "Moderate ($25k - $50k)", Min: 25000, Max: 50000, Average: 37500},
	{Label: "Luxury ($50k - $100k)", Min: 50000, Max: 100000, Average: 75000},
	{Label: "Premium (Over $100k)", Min: 100000, Max: 250000, Average: 175000},
}

// GuestRanges are the preset guest-count buckets.
var GuestRanges = []model.Range{
	{Label: "Micro Wedding (Under 20)", Min: 1, Max: 20, Average: 15},
	{Label: "Intimate (20-50)", Min: 20, Max: 50, Average: 35},
	{Label: "Medium (50-100)", Min: 50, Max: 100, Average: 75},
	{Label: "Large (100-200)", Min: 100, Max: 200, Average: 150},
	{Label: "Grand (200+)", Min: 200, Max: 500, Average: 300},
}

var WeddingStyles = []model.Option{
	{ID: "intimate", Label: "Intimate & Cozy", Description: "Small, personal celebration focused on close relationships", Icon: "🏡"},
	{ID: "traditional", Label: "Classic & Traditional", Description: "Timeless celebration with conventional elements", Icon: "⛪"},
	{ID: "luxury", Label: "Luxury & Elegant", Description: "High-end, sophisticated celebration with premium details", Icon: "✨"},
	{ID: "destination", Label: "Destination & Adventure", Description: "Unique location with a focus on experience", Icon: "🌎"},
	{ID: "custom", Label: "Uniquely Yours", Description: "Completely customized to your personal style", Icon: "💫"},
}

var Seasons = []model.Option{
	{ID: "summer", Label: "Summer", Description: "Warm weather, outdoor venues, longer daylight", Icon: "☀️"},
	{ID: "fall", Label: "Fall", Description: "Mild weather, beautiful colors, cozy atmosphere", Icon: "🍂"},
	{ID: "winter", Label: "Winter", Description: "Indoor venues, holiday spirit, potential snow", Icon: "❄️"},
	{ID: "spring", Label: "Spring", Description: "Fresh blooms, mild weather, new beginnings", Icon: "🌸"},
}

var Venues = []model.Option{
	{ID: "hotel", Label: "Hotel & Resort", Description: "All-in-one venue with accommodation", Icon: "🏨"},
	{ID: "garden", Label: "Garden & Park", Description: "Natural outdoor setting with scenic views", Icon: "🌳"},
	{ID: "historic", Label: "Historic & Castle", Description: "Unique venue with character and history", Icon: "🏰"},
	{ID: "beach", Label: "Beach & Waterfront", Description: "Scenic water views and natural beauty", Icon: "🏖️"},
	{ID: "urban", Label: "Urban & Industrial", Description: "Modern city venues with unique character", Icon: "🏙️"},
}

var defaultCategories = []model.BudgetCategory{
	{Name: "Venue", Percentage: 30, Icon: "Home", Description: "Ceremony and reception locations"},
	{Name: "Catering", Percentage: 20, Icon: "Utensils", Description: "Food service and staff"},
	{Name: "Photography", Percentage: 12, Icon: "Camera", Description: "Photos and video coverage"},
	{Name: "Attire", Percentage: 8, Icon: "Shirt", Description: "Wedding dress, suits, and accessories"},
	{Name: "Entertainment", Percentage: 7, Icon: "Music", Description: "DJ, band, or other entertainment"},
	{Name: "Decorations", Percentage: 7, Icon: "Flower", Description: "Flowers, centerpieces, and decor"},
	{Name: "Rings", Percentage: 5, Icon: "Ring", Description: "Wedding bands and engagement ring"},
	{Name: "Cake", Percentage: 4, Icon: "Cake", Description: "Wedding cake and desserts"},
	{Name: "Transportation", Percentage: 3, Icon: "Car", Description: "Vehicles for wedding party and guests"},
	{Name: "Favors", Percentage: 2, Icon: "Gift", Description: "Guest favors and welcome bags"},
	{Name: "Beverages", Percentage: 2, Icon: "Wine", Description: "Bar service and drinks"},
}

// DefaultCategories returns a fresh copy of the seed breakdown.
func DefaultCategories() []model.BudgetCategory {
	out := make([]model.BudgetCategory, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

var achievements = []model.Achievement{
	{
		ID:          BudgetMaster,
		Name:        "Budget Master",
		Description: "Completed your first budget breakdown",
		Icon:        "🏆",
		Reward: &model.Reward{
			ID:          "wedding_planning_guide",
			Title:       "Ultimate Wedding Planning Guide",
			Description: "A comprehensive guide with professional tips and timeline templates",
			Type:        model.RewardGuide,
		},
	},
	{
		ID:          DetailOriented,
		Name:        "Detail Oriented",
		Description: "Customized all category allocations",
		Icon:        "🔍",
		Reward: &model.Reward{
			ID:          "vendor_checklist",
			Title:       "Vendor Interview Checklist",
			Description: "Essential questions to ask your potential wedding vendors",
			Type:        model.RewardTemplate,
		},
	},
	{
		ID:          SmartSaver,
		Name:        "Smart Saver",
		Description: "Optimized budget to save 10% or more",
		Icon:        "💰",
		Reward: &model.Reward{
			ID:          "savings_discount",
			Title:       "Wedding Vendor Discount",
			Description: "15% off your choice of wedding vendor services",
			Type:        model.RewardDiscount,
			Code:        "WEDPLAN15",
		},
	},
}

// Achievements returns copies of every defined achievement.
func Achievements() []model.Achievement {
	out := make([]model.Achievement, len(achievements))
	for i, a := range achievements {
		out[i] = copyAchievement(a)
	}
	return out
}

// Achievement looks up an achievement by id.
func Achievement(id string) (model.Achievement, bool) {
	for _, a := range achievements {
		if a.ID == id {
			return copyAchievement(a), true
		}
	}
	return model.Achievement{}, false
}

// Option finds an option by id in opts.
func Option(opts []model.Option, id string) (model.Option, bool) {
	for _, o := range opts {
		if o.ID == id {
			return o, true
		}
	}
	return model.Option{}, false
}

func copyAchievement(a model.Achievement) model.Achievement {
	if a.Reward != nil {
		r := *a.Reward
		a.Reward = &r
	}
	return a
}

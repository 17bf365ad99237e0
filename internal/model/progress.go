package model

import "time"

// RewardType classifies what a reward unlocks.
type RewardType string

const (
	RewardGuide    RewardType = "guide"
	RewardTemplate RewardType = "template"
	RewardDiscount RewardType = "discount"
)

// Reward is a claimable prize attached to an achievement.
type Reward struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        RewardType `json:"type"`
	Code        string     `json:"code,omitempty"`
	Claimed     bool       `json:"claimed"`
}

// Achievement is a one-time milestone, optionally carrying a Reward.
type Achievement struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon,omitempty"`
	Reward      *Reward `json:"reward,omitempty"`
}

// ActiveDiscount is the single outstanding time-limited discount code.
type ActiveDiscount struct {
	Option    string    `json:"option"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}


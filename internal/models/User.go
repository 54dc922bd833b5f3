package models

import "time"

type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	CurrentStreak   int       `json:"currentStreak"`
	LongestStreak   int       `json:"longestStreak"`
	StreakUpdatedAt time.Time `json:"streakUpdatedAt"`
	CreatedAt       time.Time `json:"createdAt"`
}

package model

import (
	"time"
)

type BlogPost struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Date        time.Time `json:"date"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Content     string    `json:"-"`
	HTMLContent string    `json:"html_content"`
	ReadTime    int       `json:"read_time"`
	HeroImage   string    `json:"hero_image"`
}

type Course struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Level       string    `json:"level"`
	Duration    string    `json:"duration"`
	PriceCents  int       `json:"price_cents"`
	HTMLContent string    `json:"html_content"`
	HeroImage   string    `json:"hero_image"`
}

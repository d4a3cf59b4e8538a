package domain

import "time"

// Localized holds a text in both site languages.
type Localized struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// Complete reports whether both translations are present.
func (l Localized) Complete() bool {
	return l.EN != "" && l.AR != ""
}

// About is a profile entry shown on the public about page.
type About struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Description  Localized `json:"description"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	CVLink       string    `json:"cvLink,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SkillCategory groups skills on the public skills page.
type SkillCategory string

const (
	CategoryFrontend SkillCategory = "frontend"
	CategoryBackend  SkillCategory = "backend"
	CategoryTools    SkillCategory = "tools"
	CategoryOther    SkillCategory = "other"
)

// Valid reports whether c is one of the known categories.
func (c SkillCategory) Valid() bool {
	switch c {
	case CategoryFrontend, CategoryBackend, CategoryTools, CategoryOther:
		return true
	}
	return false
}

type Skill struct {
	ID        string        `json:"_id"`
	Name      string        `json:"name"`
	Category  SkillCategory `json:"category"`
	Icon      string        `json:"icon"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Product is a showcased project.
type Product struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description Localized `json:"description"`
	Tech        []string  `json:"tech"`
	Image       string    `json:"image"`
	Images      []string  `json:"images"`
	GitHub      string    `json:"github,omitempty"`
	Demo        string    `json:"demo,omitempty"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Message is a contact-form submission.
type Message struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Analytics is the site-wide visit counter. Exactly one document exists.
type Analytics struct {
	ID        string    `json:"_id"`
	Visits    int64     `json:"visits"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

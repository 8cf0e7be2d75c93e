package dto

import "time"

// ProjectResponse - one project with its owner
type ProjectResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Technology  string    `json:"technology"`
	Domain      string    `json:"domain"`
	TechStack   []string  `json:"tech_stack"`
	GithubLink  string    `json:"github_link,omitempty"`
	User        UserDTO   `json:"user"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProjectRequest - new project payload
type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required,max=1000"`
	Category    string   `json:"category" binding:"required,max=50"`
	Technology  string   `json:"technology" binding:"required,max=50"`
	Domain      string   `json:"domain" binding:"required,max=50"`
	TechStack   []string `json:"tech_stack"`
	GithubLink  string   `json:"github_link" binding:"omitempty,max=500,url"`
}

// UpdateProjectRequest - partial project update; nil fields are untouched
type UpdateProjectRequest struct {
	Title       *string   `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string   `json:"description,omitempty" binding:"omitempty,max=1000"`
	Category    *string   `json:"category,omitempty" binding:"omitempty,max=50"`
	Technology  *string   `json:"technology,omitempty" binding:"omitempty,max=50"`
	Domain      *string   `json:"domain,omitempty" binding:"omitempty,max=50"`
	TechStack   *[]string `json:"tech_stack,omitempty"`
	GithubLink  *string   `json:"github_link,omitempty" binding:"omitempty,max=500,url"`
}

// ProjectSearchQuery - query params for /projects/search. A blank term
// is rejected at binding time.
type ProjectSearchQuery struct {
	SearchTerm string `form:"searchTerm" binding:"required"`
	Skip       int    `form:"skip" binding:"omitempty,gte=0"`
	Take       int    `form:"take,default=20" binding:"omitempty,gte=0,lte=100"`
}

// ProjectFilterQuery - query params for the project list.
// Repeated categories/technologies/domains params form IN-sets that
// are combined with AND across the three.
type ProjectFilterQuery struct {
	SearchTerm   string   `form:"searchTerm"`
	Categories   []string `form:"categories"`
	Technologies []string `form:"technologies"`
	Domains      []string `form:"domains"`
	Skip         int      `form:"skip" binding:"omitempty,gte=0"`
	Take         int      `form:"take,default=20" binding:"omitempty,gte=0,lte=100"`
}

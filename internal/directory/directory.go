package directory

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/apostle2t/jobboard/internal/domain"
)

// Directory is the read-only list of chat-capable users. It is populated
// once at construction and never mutated afterwards.
type Directory struct {
	users []domain.ChatUser
	byID  map[string]domain.ChatUser
}

func New(users []domain.ChatUser) *Directory {
	return &Directory{
		users: users,
		byID:  lo.KeyBy(users, func(u domain.ChatUser) string { return u.ID }),
	}
}

// NewDemo builds the directory with the built-in demo contacts.
func NewDemo() *Directory {
	return New(demoUsers(time.Now()))
}

func (d *Directory) All() []domain.ChatUser {
	out := make([]domain.ChatUser, len(d.users))
	copy(out, d.users)
	return out
}

func (d *Directory) User(id string) (domain.ChatUser, error) {
	u, ok := d.byID[id]
	if !ok {
		return domain.ChatUser{}, domain.ErrUserNotFound
	}
	return u, nil
}

// Search matches query against name, company and title, case-insensitive.
// An empty query returns every user.
func (d *Directory) Search(query string) []domain.ChatUser {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return d.All()
	}

	return lo.Filter(d.users, func(u domain.ChatUser, _ int) bool {
		return strings.Contains(strings.ToLower(u.Name), query) ||
			strings.Contains(strings.ToLower(u.Company), query) ||
			strings.Contains(strings.ToLower(u.Title), query)
	})
}

func demoUsers(now time.Time) []domain.ChatUser {
	mikeSeen := now.Add(-30 * time.Minute)
	alexSeen := now.Add(-2 * time.Hour)

	return []domain.ChatUser{
		{
			ID:       "sarah-johnson",
			Name:     "Sarah Johnson",
			Avatar:   "/placeholder.svg?height=40&width=40&text=SJ",
			Title:    "Senior Recruiter",
			Company:  "TechCorp Inc.",
			IsOnline: true,
		},
		{
			ID:       "mike-chen",
			Name:     "Mike Chen",
			Avatar:   "/placeholder.svg?height=40&width=40&text=MC",
			Title:    "Engineering Manager",
			Company:  "StartupXYZ",
			IsOnline: false,
			LastSeen: &mikeSeen,
		},
		{
			ID:       "emily-davis",
			Name:     "Emily Davis",
			Avatar:   "/placeholder.svg?height=40&width=40&text=ED",
			Title:    "HR Director",
			Company:  "Design Studio",
			IsOnline: true,
		},
		{
			ID:       "alex-rodriguez",
			Name:     "Alex Rodriguez",
			Avatar:   "/placeholder.svg?height=40&width=40&text=AR",
			Title:    "CTO",
			Company:  "CloudTech Solutions",
			IsOnline: false,
			LastSeen: &alexSeen,
		},
		{
			ID:       "lisa-wang",
			Name:     "Lisa Wang",
			Avatar:   "/placeholder.svg?height=40&width=40&text=LW",
			Title:    "Product Manager",
			Company:  "Analytics Pro",
			IsOnline: true,
		},
	}
}

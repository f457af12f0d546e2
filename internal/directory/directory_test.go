package directory

import (
	"errors"
	"testing"

	"github.com/apostle2t/jobboard/internal/domain"
)

func TestUser(t *testing.T) {
	d := NewDemo()

	u, err := d.User("sarah-johnson")
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	if u.Name != "Sarah Johnson" || u.Company != "TechCorp Inc." {
		t.Fatalf("unexpected user %+v", u)
	}

	if _, err := d.User("nobody"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	d := NewDemo()

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query returns all", "", []string{"sarah-johnson", "mike-chen", "emily-davis", "alex-rodriguez", "lisa-wang"}},
		{"whitespace only returns all", "   ", []string{"sarah-johnson", "mike-chen", "emily-davis", "alex-rodriguez", "lisa-wang"}},
		{"by name, case-insensitive", "SARAH", []string{"sarah-johnson"}},
		{"by company", "startupxyz", []string{"mike-chen"}},
		{"by title", "manager", []string{"mike-chen", "lisa-wang"}},
		{"no match", "zzz", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := d.Search(tc.query)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d results, got %d: %+v", len(tc.want), len(got), got)
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("result %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	d := NewDemo()

	all := d.All()
	all[0].Name = "mutated"

	if again := d.All(); again[0].Name == "mutated" {
		t.Fatal("All must not expose internal state")
	}
}

package seed

import (
	"fmt"
	"log"
	"os"

	"newsroom/internal/models"
	"newsroom/internal/prompt"

	"gopkg.in/yaml.v3"
)

// Preset describes a declarative seeding plan loaded from a YAML file, so
// demo environments can be rebuilt reproducibly without editing code.
type Preset struct {
	Users  int           `yaml:"users"`
	Groups []GroupPreset `yaml:"groups"`
}

// GroupPreset declares a single group and how much activity to seed in it.
type GroupPreset struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Prompt   string `yaml:"prompt"`
	Members  int    `yaml:"members"`
	Posts    int    `yaml:"posts"`
}

// LoadPreset reads and parses a preset YAML file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	if p.Users <= 0 {
		return nil, fmt.Errorf("preset must declare at least one user")
	}
	if len(p.Groups) == 0 {
		return nil, fmt.Errorf("preset must declare at least one group")
	}
	for i, g := range p.Groups {
		if g.Name == "" {
			return nil, fmt.Errorf("preset group %d has no name", i)
		}
	}
	return &p, nil
}

// ApplyPreset seeds the database according to the preset plan.
func (s *Seeder) ApplyPreset(p *Preset) error {
	f := NewFactory(s.db)

	users := make([]*models.User, 0, p.Users)
	for i := 0; i < p.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d users created", len(users))

	for _, gp := range p.Groups {
		promptText := gp.Prompt
		if promptText == "" {
			promptText = prompt.Fallback(gp.Name)
		}
		group, err := f.CreateGroup(func(g *models.NewsGroup) {
			g.Name = gp.Name
			g.Category = gp.Category
			g.PromptOfTheWeek = promptText
		})
		if err != nil {
			return fmt.Errorf("create group %q: %w", gp.Name, err)
		}

		members := gp.Members
		if members > len(users) {
			members = len(users)
		}
		for i := 0; i < members; i++ {
			if err := f.JoinGroup(users[i], group); err != nil {
				return fmt.Errorf("join group %q: %w", gp.Name, err)
			}
		}

		for i := 0; i < gp.Posts; i++ {
			author := users[0]
			if members > 0 {
				author = users[f.r.Intn(members)]
			}
			if _, err := f.CreatePost(author, group); err != nil {
				return fmt.Errorf("create post in %q: %w", gp.Name, err)
			}
		}
		log.Printf("group %q seeded with %d members and %d posts", gp.Name, members, gp.Posts)
	}
	return nil
}

// README: Backdrop picker; chooses a random cosmetic background image per page load.
package backdrop

import "math/rand"

// DefaultImages are the travel photos the planner page rotates through.
var DefaultImages = []string{
	"https://source.unsplash.com/1920x1080/?travel,nature",
	"https://source.unsplash.com/1920x1080/?beach,sunset",
	"https://source.unsplash.com/1920x1080/?mountains,adventure",
	"https://source.unsplash.com/1920x1080/?city,landscape",
	"https://source.unsplash.com/1920x1080/?forest,waterfall",
}

type Service struct {
	images []string
	intN   func(n int) int
}

// NewService uses DefaultImages when images is empty.
func NewService(images []string) *Service {
	if len(images) == 0 {
		images = DefaultImages
	}
	return &Service{images: append([]string(nil), images...), intN: rand.Intn}
}

// Pick returns one image URL chosen uniformly at random.
func (s *Service) Pick() string {
	return s.images[s.intN(len(s.images))]
}

package trainconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// ResolutionSpec describes target video dimensions as width, height, and
// frame count.
type ResolutionSpec struct {
	Width  int
	Height int
	Frames int
}

// ParseResolution parses a "WxHxF" string. Exactly three components are
// required and each must be a positive integer; anything else is an error,
// never a silent default.
func ParseResolution(value string) (ResolutionSpec, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ResolutionSpec{}, fmt.Errorf("resolution %q: empty", value)
	}
	parts := strings.Split(trimmed, "x")
	if len(parts) != 3 {
		return ResolutionSpec{}, fmt.Errorf("resolution %q: expected WxHxF with 3 components, got %d", value, len(parts))
	}
	dims := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return ResolutionSpec{}, fmt.Errorf("resolution %q: component %q is not an integer", value, part)
		}
		if n <= 0 {
			return ResolutionSpec{}, fmt.Errorf("resolution %q: component %d must be positive", value, n)
		}
		dims[i] = n
	}
	return ResolutionSpec{Width: dims[0], Height: dims[1], Frames: dims[2]}, nil
}

// Dims returns the spec as the [width, height, frames] list stored in
// training configs.
func (r ResolutionSpec) Dims() []int {
	return []int{r.Width, r.Height, r.Frames}
}

// String renders the spec back to WxHxF form.
func (r ResolutionSpec) String() string {
	return fmt.Sprintf("%dx%dx%d", r.Width, r.Height, r.Frames)
}

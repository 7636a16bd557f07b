package service

import (
	"fmt"
	"strings"
)

// preferredModels is the generation-model priority order. Earlier entries are
// picked first when the API offers them.
var preferredModels = []string{
	"gemini-1.5-pro",
	"gemini-1.5-flash",
	"gemini-1.0-pro",
}

// pickModel chooses the first preferred model present in the available list,
// falls back to the first available model when no preference matches, and
// fails only when nothing is available at all. Names are matched with or
// without the "models/" resource prefix the list endpoint returns.
func pickModel(preferred, available []string) (string, error) {
	if len(available) == 0 {
		return "", fmt.Errorf("no generation models available")
	}
	normalized := make(map[string]bool, len(available))
	for _, name := range available {
		normalized[strings.TrimPrefix(name, "models/")] = true
	}
	for _, want := range preferred {
		if normalized[want] {
			return want, nil
		}
	}
	return strings.TrimPrefix(available[0], "models/"), nil
}

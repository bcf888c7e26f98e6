package reducer

import (
	"github.com/Makepad-fr/tada/internal/action"
	"github.com/Makepad-fr/tada/internal/model"
)

// Visibility reduces the visibility filter. The zero Filter stands for "no
// prior state" and becomes ShowAll. SetVisibilityFilter is taken verbatim;
// unknown values are left for the selector to treat as ShowAll.
func Visibility(f model.Filter, a action.Action) model.Filter {
	if f == "" {
		f = model.ShowAll
	}
	if set, ok := a.(action.SetVisibilityFilter); ok {
		return set.Filter
	}
	return f
}

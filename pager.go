package ask

// ListOption is one entry of a list-style prompt: the option value and
// its index in the original option list, which stays stable under
// filtering.
type ListOption struct {
	Index int
	Value string
}

// Page is the visible window of a larger option list.
type Page[T any] struct {
	// Content is the sub-sequence of the full list currently visible.
	Content []T
	// Selection is the index of the highlighted entry within Content.
	Selection int
	// First reports whether the window touches the start of the full list.
	First bool
	// Last reports whether the window touches the end of the full list.
	Last bool
}

// paginate computes the window of at most pageSize options that contains
// cursor, keeping the cursor centered when the list exceeds one page and
// clamping the window at both ends. It is a pure function of its inputs;
// wrap-around navigation is handled by the caller adjusting cursor modulo
// the list length before calling. An empty options slice yields an empty
// page with both ends marked; Selection is meaningless then, so callers
// must check Content before indexing into it.
func paginate[T any](pageSize int, options []T, cursor int) Page[T] {
	total := len(options)

	var start, end int
	switch {
	case total <= pageSize:
		start, end = 0, total
	case cursor < pageSize/2:
		start, end = 0, pageSize
	case cursor >= total-pageSize/2:
		start, end = total-pageSize, total
	default:
		start = cursor - pageSize/2
		end = start + pageSize
	}

	return Page[T]{
		Content:   options[start:end],
		Selection: cursor - start,
		First:     start == 0,
		Last:      end == total,
	}
}

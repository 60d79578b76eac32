package imaging

// HistogramEntry is one distinct color and its pixel count within a region.
type HistogramEntry struct {
	Color RGBColor
	Count int
}

// ColorHistogram maps each distinct color in a region to its pixel count.
//
// Entries preserve the order in which colors were first added. That order is
// part of the contract: most-common summarization sorts entries by count with
// a stable sort, so equal counts resolve to whichever color the scan
// encountered last among them.
type ColorHistogram struct {
	entries []HistogramEntry
	index   map[RGBColor]int
	total   int
}

// NewColorHistogram creates an empty histogram.
func NewColorHistogram() *ColorHistogram {
	return &ColorHistogram{index: make(map[RGBColor]int)}
}

// Add records one pixel of color c.
func (h *ColorHistogram) Add(c RGBColor) {
	if i, ok := h.index[c]; ok {
		h.entries[i].Count++
	} else {
		h.index[c] = len(h.entries)
		h.entries = append(h.entries, HistogramEntry{Color: c, Count: 1})
	}
	h.total++
}

// Entries returns the recorded colors in first-seen order. The slice is
// shared with the histogram; callers that reorder it must copy first.
func (h *ColorHistogram) Entries() []HistogramEntry {
	return h.entries
}

// Len returns the number of distinct colors.
func (h *ColorHistogram) Len() int {
	return len(h.entries)
}

// Total returns the number of pixels recorded, i.e. the sum of all counts.
func (h *ColorHistogram) Total() int {
	return h.total
}

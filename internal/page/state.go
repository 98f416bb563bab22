package page

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// ApplyQuery restores view state carried in a query string: hover=<plan id>
// and open=<faq id>, the latter repeated or comma separated. Values that do
// not parse or do not name a catalog entry are skipped.
func (r *Renderer) ApplyQuery(q url.Values) {
	if id, err := strconv.Atoi(q.Get("hover")); err == nil {
		r.OnHoverPlan(id)
	}

	for _, v := range q["open"] {
		for _, part := range strings.Split(v, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || r.IsExpanded(id) {
				continue
			}
			r.ToggleFAQ(id)
		}
	}
}

// StateKey encodes the view state canonically, e.g. "hover=3&open=1,4".
// The empty state encodes as "".
func (r *Renderer) StateKey() string {
	var parts []string
	if r.hovered != NoPlan {
		parts = append(parts, "hover="+strconv.Itoa(r.hovered))
	}
	if len(r.expanded) > 0 {
		ids := make([]int, 0, len(r.expanded))
		for id := range r.expanded {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		open := make([]string, len(ids))
		for i, id := range ids {
			open[i] = strconv.Itoa(id)
		}
		parts = append(parts, "open="+strings.Join(open, ","))
	}
	return strings.Join(parts, "&")
}

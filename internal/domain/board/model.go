package board

import "github.com/easelhq/easel/api"

// DefaultLayout is the hardcoded starting position for each catalog card.
// Reviewers who have never dragged a card see this layout; stored rows
// override it key by key when merged on load.
var DefaultLayout = map[api.BoardItemKey]api.BoardItem{
	api.BoardCustomer:       {ItemKey: api.BoardCustomer, XPct: 15, YPct: 16, Zone: api.ZoneCore},
	api.BoardIntegrator:     {ItemKey: api.BoardIntegrator, XPct: 34, YPct: 30, Zone: api.ZoneCore},
	api.BoardDifferentiator: {ItemKey: api.BoardDifferentiator, XPct: 66, YPct: 12, Zone: api.ZoneSecondary},
	api.BoardStrategic:      {ItemKey: api.BoardStrategic, XPct: 84, YPct: 28, Zone: api.ZoneSecondary},
	api.BoardConsistency:    {ItemKey: api.BoardConsistency, XPct: 14, YPct: 76, Zone: api.ZoneSupporting},
	api.BoardCreativity:     {ItemKey: api.BoardCreativity, XPct: 33, YPct: 80, Zone: api.ZoneSupporting},
	api.BoardCulture:        {ItemKey: api.BoardCulture, XPct: 52, YPct: 84, Zone: api.ZoneSupporting},
}

// ValidKey reports whether k belongs to the closed catalog.
func ValidKey(k api.BoardItemKey) bool {
	_, ok := DefaultLayout[k]
	return ok
}

package shell

// NavItem is one entry in a role's navigation menu. Icon names the glyph the
// front-end renders; the server only ships the identifier.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

// navigation is the role-keyed menu definition.
var navigation = map[Role][]NavItem{
	RolePublic: {
		{Label: "Register", Path: "register", Icon: "user-plus"},
		{Label: "ROI Calculator", Path: "roi", Icon: "trending-up"},
	},
	RoleFranchisee: {
		{Label: "Dashboard", Path: "dashboard", Icon: "layout-dashboard"},
		{Label: "My Kiosks", Path: "kiosks", Icon: "coffee"},
		{Label: "Statements", Path: "statements", Icon: "file-text"},
	},
	RoleAdmin: {
		{Label: "Management", Path: "management", Icon: "settings"},
		{Label: "Global Analytics", Path: "analytics", Icon: "pie-chart"},
	},
	RoleOperations: {
		{Label: "IoT Monitoring", Path: "iot", Icon: "activity"},
		{Label: "Service Tickets", Path: "service", Icon: "wrench"},
	},
	RoleAffiliate: {
		{Label: "Program Stats", Path: "affiliate-dashboard", Icon: "users"},
		{Label: "Referrals", Path: "referrals", Icon: "user-plus"},
		{Label: "Earnings", Path: "earnings", Icon: "trending-up"},
	},
	RoleSupervisor: {
		{Label: "Realtime Analytics", Path: "analytics", Icon: "bar-chart-3"},
		{Label: "Project Locations", Path: "locations", Icon: "map-pin"},
		{Label: "Inventory Management", Path: "inventory", Icon: "activity"},
	},
}

// RenderedNavItem is the view model with active state resolved.
type RenderedNavItem struct {
	NavItem
	Active bool `json:"active"`
}

// BuildNav renders a role's menu with the active entry marked.
func BuildNav(role Role, currentPath string) []RenderedNavItem {
	items := navigation[role]
	out := make([]RenderedNavItem, 0, len(items))
	for _, it := range items {
		out = append(out, RenderedNavItem{
			NavItem: it,
			Active:  it.Path == currentPath,
		})
	}
	return out
}

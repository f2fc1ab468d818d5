package usecase

import (
	"netdiskbot/internal/biz/domain"
)

// Guard resolves the admin and group allow-lists against an inbound event.
type Guard struct {
	configUC *ConfigUsecase
}

// NewGuard creates a new permission guard.
func NewGuard(configUC *ConfigUsecase) *Guard {
	return &Guard{configUC: configUC}
}

// IsAdmin reports whether the event sender is a configured admin.
func (g *Guard) IsAdmin(ev domain.Event) bool {
	id := ev.SenderID()
	if id == "" {
		return false
	}
	return g.configUC.Snapshot().HasAdmin(id)
}

// CheckPermission reports whether the event may use the search commands.
// An empty enabled-group list means open mode: everyone passes. Otherwise
// admins pass, listed groups pass, and everything else (including events
// without a resolvable group) is denied.
func (g *Guard) CheckPermission(ev domain.Event) bool {
	cfg := g.configUC.Snapshot()
	if len(cfg.EnabledGroups) == 0 {
		return true
	}
	if g.IsAdmin(ev) {
		return true
	}
	if gid := ev.GroupID(); gid != "" && cfg.HasGroup(gid) {
		return true
	}
	return false
}

// Package vocabulary holds the recognized categories, statuses and locations used to bucket
// assets for aggregation. Values outside these lists are stored normally but never bucketed.
package vocabulary

import "it-inventory/config"

type Model struct {
	categories        []string
	statuses          []string
	locations         []string
	activeStatus      string
	maintenanceStatus string
	brokenStatus      string
}

func (m Model) Categories() []string {
	return m.categories
}

func (m Model) Statuses() []string {
	return m.statuses
}

func (m Model) Locations() []string {
	return m.locations
}

func (m Model) ActiveStatus() string {
	return m.activeStatus
}

func (m Model) MaintenanceStatus() string {
	return m.maintenanceStatus
}

func (m Model) BrokenStatus() string {
	return m.brokenStatus
}

func Default() Model {
	return FromConfig(config.DefaultConfig().Vocabulary)
}

func FromConfig(c config.Vocabulary) Model {
	return Model{
		categories:        append([]string(nil), c.Categories...),
		statuses:          append([]string(nil), c.Statuses...),
		locations:         append([]string(nil), c.Locations...),
		activeStatus:      c.ActiveStatus,
		maintenanceStatus: c.MaintenanceStatus,
		brokenStatus:      c.BrokenStatus,
	}
}

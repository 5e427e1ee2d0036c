// Package domain contains the core entities of the plot marketplace: users,
// the region/district/council hierarchy, plots and orders. The types are free
// of infrastructure concerns so they can be shared by storage, services and
// the HTTP layer.
package domain

// Package domain contains the core entities of the auto builder: tracked
// repositories, their CI integrations, builds, automatic fix attempts and the
// audit trail. The types are free of infrastructure concerns so they can be
// shared by services, storage and transport layers.
package domain

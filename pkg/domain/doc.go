// Package domain contains the core entities of the uptime monitor: registered
// domains and the examinations recorded for them. These types are shared by the
// storage, probing, scheduling and API layers and carry no infrastructure
// concerns.
package domain

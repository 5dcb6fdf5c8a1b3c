// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The generation pipeline itself lives in internal/geometry and
// internal/meshing; services wire it to the dataset, the filesystem and
// the catalog.
package services

// Package services implements the driving port interfaces.
// Services contain the generation logic and orchestrate
// calls to driven ports (adapters).
//
// Each generation run is sequential: services do not start goroutines.
package services

// Package runconfig loads the planner's optional operational settings —
// logging, export format and compression, report URL, and search node
// budget — from an HCL file.
// It never touches the domain input format: the assembly graph itself is
// always XML, read by internal/xmlio, regardless of what this package
// loads.
package runconfig

// Package xmlio reads and writes the assembly graph's on-disk XML
// representation, and exports completed plans as msgpack, DOT, or a
// remote report POST.
package xmlio

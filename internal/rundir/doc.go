// Package rundir allocates isolated per-run output directories.
//
// Directory names combine a wall-clock timestamp with a short random token so
// two runs started within the same second cannot silently share an output
// location. An existing leaf path is a loud failure, never reused, and a file
// lock on the base directory serializes concurrent allocators.
package rundir

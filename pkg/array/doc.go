// Package array provides byte buffers, big-endian data views and
// element-typed arrays over shared binary memory.
package array
